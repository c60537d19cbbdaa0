// Package config loads and saves the noteboard configuration file.
package config

import (
	"log/slog"

	"github.com/marcus/noteboard/internal/note"
	"github.com/marcus/noteboard/internal/styles"
)

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui" yaml:"ui"`
	Board  BoardConfig  `json:"board" yaml:"board"`
	Keymap KeymapConfig `json:"keymap" yaml:"keymap"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter" yaml:"showFooter"`
	Markdown   bool        `json:"markdown" yaml:"markdown"` // render note content as markdown
	Theme      ThemeConfig `json:"theme" yaml:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name" yaml:"name"`                                 // "light" or "dark"
	Overrides map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty"` // palette key -> hex color
}

// BoardConfig configures the note board.
type BoardConfig struct {
	Seed         bool   `json:"seed" yaml:"seed"`                 // start with the sample notes
	DefaultLabel string `json:"defaultLabel" yaml:"defaultLabel"` // label preselected in the creation form
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides" yaml:"overrides"`
}

// LogConfig configures the debug log. The TUI owns the terminal, so logs
// only go somewhere when File is set.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
	File  string `json:"file" yaml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
			Markdown:   true,
			Theme: ThemeConfig{
				Name:      styles.LightName,
				Overrides: make(map[string]string),
			},
		},
		Board: BoardConfig{
			Seed:         true,
			DefaultLabel: string(note.LabelOther),
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for errors, correcting values that
// have a safe default.
func (c *Config) Validate() error {
	if !styles.IsValidTheme(c.UI.Theme.Name) {
		slog.Warn("unknown theme, using light", "theme", c.UI.Theme.Name)
		c.UI.Theme.Name = styles.LightName
	}
	label, err := note.ParseLabel(c.Board.DefaultLabel)
	if err != nil {
		slog.Warn("unknown default label, using other", "label", c.Board.DefaultLabel)
		label = note.LabelOther
	}
	c.Board.DefaultLabel = string(label)
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a log level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
