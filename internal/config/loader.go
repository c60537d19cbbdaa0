package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/noteboard"
	configFile = "config.json"
)

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// rawConfig is the unmarshaling intermediary. Pointer fields distinguish
// "unset" from false.
type rawConfig struct {
	UI     rawUIConfig    `json:"ui" yaml:"ui"`
	Board  rawBoardConfig `json:"board" yaml:"board"`
	Keymap KeymapConfig   `json:"keymap" yaml:"keymap"`
	Log    LogConfig      `json:"log" yaml:"log"`
}

type rawUIConfig struct {
	ShowFooter *bool       `json:"showFooter" yaml:"showFooter"`
	Markdown   *bool       `json:"markdown" yaml:"markdown"`
	Theme      ThemeConfig `json:"theme" yaml:"theme"`
}

type rawBoardConfig struct {
	Seed         *bool  `json:"seed" yaml:"seed"`
	DefaultLabel string `json:"defaultLabel" yaml:"defaultLabel"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/noteboard/config.json. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // Return defaults when home is unknown
		}
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	mergeConfig(cfg, &raw)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Markdown != nil {
		cfg.UI.Markdown = *raw.UI.Markdown
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = strings.ToLower(raw.UI.Theme.Name)
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}

	// Board
	if raw.Board.Seed != nil {
		cfg.Board.Seed = *raw.Board.Seed
	}
	if raw.Board.DefaultLabel != "" {
		cfg.Board.DefaultLabel = raw.Board.DefaultLabel
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	// Log
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
	if raw.Log.File != "" {
		cfg.Log.File = raw.Log.File
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// SetTestConfigPath points ConfigPath at path. For tests only.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath restores the default ConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }
