package styles

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	black = "#000000"
	white = "#ffffff"

	// share of the foreground mixed into the background for a derived
	// button background
	buttonBlend = 0.2
)

// Resolve returns t with the optional button colors filled in. An empty
// ButtonBackground becomes a blend of background toward foreground; an
// empty ButtonColor becomes black or white, whichever contrasts more with
// the button background.
func (t Theme) Resolve() Theme {
	p := &t.Colors
	if p.ButtonBackground == "" {
		p.ButtonBackground = blend(p.Background, p.Foreground, buttonBlend)
	}
	if p.ButtonColor == "" {
		p.ButtonColor = readableOn(p.ButtonBackground)
	}
	return t
}

// parseHex parses #RRGGBB, ignoring a trailing alpha pair.
func parseHex(hex string) (colorful.Color, bool) {
	if !IsValidHexColor(hex) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex[:7])
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func blend(from, to string, t float64) string {
	a, ok := parseHex(from)
	if !ok {
		return from
	}
	b, ok := parseHex(to)
	if !ok {
		return from
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// readableOn picks black or white text for the given background.
func readableOn(bg string) string {
	c, ok := parseHex(bg)
	if !ok {
		return black
	}
	k, _ := parseHex(black)
	w, _ := parseHex(white)
	if contrastRatio(k, c) >= contrastRatio(w, c) {
		return black
	}
	return white
}

// ContrastRatio returns the WCAG contrast ratio of two hex colors, or 0 if
// either is invalid.
func ContrastRatio(fg, bg string) float64 {
	a, ok := parseHex(fg)
	if !ok {
		return 0
	}
	b, ok := parseHex(bg)
	if !ok {
		return 0
	}
	return contrastRatio(a, b)
}

func contrastRatio(fg, bg colorful.Color) float64 {
	l1 := relativeLuminance(fg)
	l2 := relativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
