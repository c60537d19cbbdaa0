// Package app holds the root Bubble Tea model. It owns the theme selector
// and hands the board a read-only style set on every render.
package app

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/noteboard/internal/board"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/theme"
	"github.com/marcus/noteboard/internal/ui"
)

// Model is the root Bubble Tea model for the note board.
type Model struct {
	cfg    *config.Config
	keymap *keymap.Registry
	logger *slog.Logger

	// Theme state. Only the root can toggle; children get styles by value.
	selector *theme.Selector
	styles   styles.Styles
	overlay  ui.Overlay

	board *board.Model
	mouse *mouse.Handler

	// UI state
	width, height int
	showHelp      bool
	showFooter    bool
	ready         bool

	// Theme button hover state
	themeButtonHover bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// now is replaceable for toast expiry tests
	now func() time.Time
}

// New creates the application model.
func New(cfg *config.Config, km *keymap.Registry, sel *theme.Selector, b *board.Model, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	st := styles.New(sel.Current())
	return Model{
		cfg:        cfg,
		keymap:     km,
		logger:     logger,
		selector:   sel,
		styles:     st,
		overlay:    ui.NewOverlay(st.Dim),
		board:      b,
		mouse:      mouse.NewHandler(),
		showFooter: cfg.UI.ShowFooter,
		now:        time.Now,
	}
}

// Init starts the clock used to expire toasts and turns on mouse motion
// reporting without a held button, which theme button hover relies on.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnableMouseAllMotion, m.board.Init())
}

// Board returns the board component.
func (m Model) Board() *board.Model { return m.board }

// ThemeName returns the active theme name.
func (m Model) ThemeName() string { return m.selector.Name() }

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool { return m.showHelp }

// Status returns the current toast text and whether it is an error.
func (m Model) Status() (string, bool) { return m.statusMsg, m.statusIsError }

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = m.now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && m.now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// toggleTheme flips the theme and rebuilds the style set once. Notes,
// favorites and the edit session are untouched.
func (m *Model) toggleTheme() {
	t := m.selector.Toggle()
	m.styles = styles.New(t)
	m.overlay = ui.NewOverlay(m.styles.Dim)
	m.logger.Debug("theme toggled", "theme", t.Name)
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.showFooter {
		h -= footerHeight
	}
	return max(h, 0)
}
