// Package theme resolves the starting theme and owns the light/dark
// selector.
package theme

import (
	"log/slog"
	"strings"

	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/styles"
)

// ResolvedTheme represents a fully-determined theme configuration.
type ResolvedTheme struct {
	BaseName  string
	Overrides map[string]string
}

// ResolveTheme determines the starting theme.
// Priority: flag value > config UI.Theme > "light".
func ResolveTheme(cfg *config.Config, flagName string) ResolvedTheme {
	resolved := ResolvedTheme{}
	if cfg != nil {
		resolved.BaseName = cfg.UI.Theme.Name
		resolved.Overrides = cfg.UI.Theme.Overrides
	}

	if name := strings.ToLower(strings.TrimSpace(flagName)); name != "" {
		resolved.BaseName = name
	}

	if !styles.IsValidTheme(resolved.BaseName) {
		if resolved.BaseName != "" {
			slog.Warn("unknown theme, using light", "theme", resolved.BaseName)
		}
		resolved.BaseName = styles.LightName
	}

	return resolved
}

// NewSelectorFromResolved builds a selector over the built-in light and
// dark themes with the resolved overrides layered onto both.
func NewSelectorFromResolved(r ResolvedTheme) *Selector {
	light := styles.LightTheme.WithOverrides(r.Overrides)
	dark := styles.DarkTheme.WithOverrides(r.Overrides)
	return NewSelector(light, dark, r.BaseName)
}
