// Package styles defines the color themes and the lipgloss style set
// derived from them.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the full style set for one theme. It is a plain value: the app
// builds it from the active theme and hands copies to the views, so views
// can read the theme but never change it.
type Styles struct {
	Theme Theme

	// Colors
	Foreground lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color

	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Favorite lipgloss.Style
	KeyHint  lipgloss.Style

	// Panels and cards
	Panel        lipgloss.Style
	PanelActive  lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardEditing  lipgloss.Style

	// Form controls
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	// Modals
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	Dim        lipgloss.Style
}

// New builds the style set for a theme. Optional palette colors are
// resolved first.
func New(theme Theme) Styles {
	theme = theme.Resolve()
	c := theme.Colors

	fg := lipgloss.Color(c.Foreground)
	bg := lipgloss.Color(c.Background)
	accent := lipgloss.Color(c.Accent)
	muted := lipgloss.Color(c.Muted)
	border := lipgloss.Color(c.Border)
	btnBg := lipgloss.Color(c.ButtonBackground)
	btnFg := lipgloss.Color(c.ButtonColor)

	s := Styles{
		Theme:      theme,
		Foreground: fg,
		Background: bg,
		Accent:     accent,
	}

	s.App = lipgloss.NewStyle().
		Foreground(fg).
		Background(bg)

	s.Header = lipgloss.NewStyle().
		Foreground(fg).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(muted)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(fg)

	s.Body = lipgloss.NewStyle().
		Foreground(fg)

	s.Muted = lipgloss.NewStyle().
		Foreground(muted)

	s.Label = lipgloss.NewStyle().
		Foreground(accent).
		Italic(true)

	s.Favorite = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Favorite))

	s.KeyHint = lipgloss.NewStyle().
		Foreground(btnFg).
		Background(btnBg).
		Padding(0, 1)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	s.PanelActive = s.Panel.
		BorderForeground(accent)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	s.CardSelected = s.Card.
		BorderForeground(accent)

	s.CardEditing = s.Card.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent)

	s.Button = lipgloss.NewStyle().
		Foreground(btnFg).
		Background(btnBg).
		Padding(0, 2)

	s.ButtonFocus = s.Button.
		Background(accent).
		Foreground(lipgloss.Color(readableOn(c.Accent))).
		Bold(true)

	s.ToastSuccess = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Success)).
		Foreground(lipgloss.Color(readableOn(c.Success))).
		Bold(true).
		Padding(0, 1)

	s.ToastError = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Error)).
		Foreground(lipgloss.Color(readableOn(c.Error))).
		Bold(true).
		Padding(0, 1)

	s.ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(fg).
		Background(bg).
		Padding(1, 2)

	s.ModalTitle = lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		MarginBottom(1)

	s.Dim = lipgloss.NewStyle().
		Foreground(muted)

	return s
}
