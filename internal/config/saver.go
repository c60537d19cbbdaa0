package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// saveConfig is the serialization intermediary. Booleans are pointers so
// false values are written explicitly.
type saveConfig struct {
	UI     saveUIConfig    `json:"ui" yaml:"ui"`
	Board  saveBoardConfig `json:"board" yaml:"board"`
	Keymap KeymapConfig    `json:"keymap" yaml:"keymap"`
	Log    LogConfig       `json:"log" yaml:"log"`
}

type saveUIConfig struct {
	ShowFooter *bool       `json:"showFooter" yaml:"showFooter"`
	Markdown   *bool       `json:"markdown" yaml:"markdown"`
	Theme      ThemeConfig `json:"theme" yaml:"theme"`
}

type saveBoardConfig struct {
	Seed         *bool  `json:"seed" yaml:"seed"`
	DefaultLabel string `json:"defaultLabel,omitempty" yaml:"defaultLabel,omitempty"`
}

// toSaveConfig converts Config to the serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		UI: saveUIConfig{
			ShowFooter: &cfg.UI.ShowFooter,
			Markdown:   &cfg.UI.Markdown,
			Theme:      cfg.UI.Theme,
		},
		Board: saveBoardConfig{
			Seed:         &cfg.Board.Seed,
			DefaultLabel: cfg.Board.DefaultLabel,
		},
		Keymap: cfg.Keymap,
		Log:    cfg.Log,
	}
}

// Save writes the config to ~/.config/noteboard/config.json
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("config path unknown")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the config to path. JSON files keep top-level keys this
// package does not manage; YAML files are rewritten.
func SaveTo(path string, cfg *Config) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)

	if isYAML(path) {
		data, err := yaml.Marshal(sc)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}

	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		// Unparseable files are replaced wholesale
		_ = json.Unmarshal(existing, &merged)
	}

	data, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	var managed map[string]json.RawMessage
	if err := json.Unmarshal(data, &managed); err != nil {
		return err
	}
	for k, v := range managed {
		merged[k] = v
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
