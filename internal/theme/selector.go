package theme

import "github.com/marcus/noteboard/internal/styles"

// Selector toggles between a light and a dark theme. The owner of the
// selector is the only thing that can change the active theme; everyone
// else receives the values returned by Current.
type Selector struct {
	themes  [2]styles.Theme
	current int
}

// NewSelector creates a selector that starts on the theme named start
// (matched against either theme's Name), defaulting to light.
func NewSelector(light, dark styles.Theme, start string) *Selector {
	s := &Selector{themes: [2]styles.Theme{light, dark}}
	if start == dark.Name {
		s.current = 1
	}
	return s
}

// Toggle flips to the other theme and returns it.
func (s *Selector) Toggle() styles.Theme {
	s.current = 1 - s.current
	return s.Current()
}

// Current returns a copy of the active theme.
func (s *Selector) Current() styles.Theme {
	return s.themes[s.current]
}

// Name returns the active theme's name.
func (s *Selector) Name() string {
	return s.themes[s.current].Name
}

// IsDark reports whether the dark theme is active.
func (s *Selector) IsDark() bool {
	return s.current == 1
}
