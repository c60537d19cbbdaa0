package styles

import (
	"regexp"
	"sort"
)

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// Palette holds the colors of one theme. ButtonBackground and ButtonColor
// are optional; Resolve fills them in.
type Palette struct {
	Foreground       string `json:"foreground"`
	Background       string `json:"background"`
	ButtonBackground string `json:"buttonBackground,omitempty"`
	ButtonColor      string `json:"buttonColor,omitempty"`

	Accent   string `json:"accent"`
	Muted    string `json:"muted"`
	Border   string `json:"border"`
	Favorite string `json:"favorite"`
	Success  string `json:"success"`
	Error    string `json:"error"`

	// Glamour style name used for note content
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme is a named palette.
type Theme struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Colors      Palette `json:"colors"`
}

const (
	LightName = "light"
	DarkName  = "dark"
)

// Built-in themes
var (
	LightTheme = Theme{
		Name:        LightName,
		DisplayName: "Light",
		Colors: Palette{
			Foreground: "#000000",
			Background: "#eeeeee",

			Accent:   "#2563EB",
			Muted:    "#6B7280",
			Border:   "#9CA3AF",
			Favorite: "#DC2626",
			Success:  "#059669",
			Error:    "#DC2626",

			MarkdownTheme: "light",
		},
	}

	DarkTheme = Theme{
		Name:        DarkName,
		DisplayName: "Dark",
		Colors: Palette{
			Foreground: "#e0e0e0",
			Background: "#222222",

			Accent:   "#7C3AED",
			Muted:    "#9CA3AF",
			Border:   "#4B5563",
			Favorite: "#F472B6",
			Success:  "#10B981",
			Error:    "#EF4444",

			MarkdownTheme: "dark",
		},
	}
)

var registry = map[string]Theme{
	LightName: LightTheme,
	DarkName:  DarkTheme,
}

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	_, ok := registry[name]
	return ok
}

// GetTheme returns a theme by name, or the light theme if not found
func GetTheme(name string) Theme {
	if theme, ok := registry[name]; ok {
		return theme
	}
	return LightTheme
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a copy of t with color overrides applied. Keys are
// the palette's JSON names. Color values must be valid hex colors; invalid
// ones are silently ignored.
func (t Theme) WithOverrides(overrides map[string]string) Theme {
	for key, value := range overrides {
		applySingleOverride(&t.Colors, key, value)
	}
	return t
}

// applySingleOverride applies a single string override.
func applySingleOverride(p *Palette, key, value string) {
	// markdownTheme is a name, not a color
	if key != "markdownTheme" && !IsValidHexColor(value) {
		return
	}

	switch key {
	case "foreground":
		p.Foreground = value
	case "background":
		p.Background = value
	case "buttonBackground":
		p.ButtonBackground = value
	case "buttonColor":
		p.ButtonColor = value
	case "accent":
		p.Accent = value
	case "muted":
		p.Muted = value
	case "border":
		p.Border = value
	case "favorite":
		p.Favorite = value
	case "success":
		p.Success = value
	case "error":
		p.Error = value
	case "markdownTheme":
		p.MarkdownTheme = value
	}
}
