package version

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
)

// InstallMethod represents how noteboard was installed.
type InstallMethod string

const (
	InstallMethodGo     InstallMethod = "go"
	InstallMethodBinary InstallMethod = "binary"
)

var (
	detectedMethod     InstallMethod
	detectedMethodOnce sync.Once
)

// DetectInstallMethod determines how noteboard was installed. The result
// is cached for the lifetime of the process.
func DetectInstallMethod() InstallMethod {
	detectedMethodOnce.Do(func() {
		detectedMethod = InstallMethodBinary
		exe, err := os.Executable()
		if err != nil {
			return
		}
		if exe, err = filepath.EvalSymlinks(exe); err != nil {
			return
		}
		if isGoBin(exe, os.Getenv("GOBIN"), os.Getenv("GOPATH"), homeDir()) {
			detectedMethod = InstallMethodGo
		}
	})
	return detectedMethod
}

func homeDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return home
}

// isGoBin reports whether exe sits in a Go bin directory.
func isGoBin(exe, gobin, gopath, home string) bool {
	dir := filepath.Dir(exe)

	if gobin != "" && dir == gobin {
		return true
	}
	if gopath != "" && dir == filepath.Join(gopath, "bin") {
		return true
	}
	if home != "" && dir == filepath.Join(home, "go", "bin") {
		return true
	}

	// Heuristic: path contains /go/bin/
	sep := string(filepath.Separator)
	return strings.Contains(exe, sep+"go"+sep+"bin"+sep)
}
