// Package board implements the Note Board component: the creation form,
// the grid of note cards with in-place editing, and the favorites summary.
package board

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/markdown"
	"github.com/marcus/noteboard/internal/note"
)

// Focus is the area of the board receiving keys.
type Focus int

const (
	FocusGrid Focus = iota
	FocusForm
	FocusEdit
)

// String returns the display name for the focus.
func (f Focus) String() string {
	switch f {
	case FocusForm:
		return "form"
	case FocusEdit:
		return "edit"
	default:
		return "grid"
	}
}

type formField int

const (
	formTitle formField = iota
	formContent
	formLabel
	formSubmit
	formFieldCount
)

type editField int

const (
	editTitle editField = iota
	editContent
	editLabel
	editFieldCount
)

const (
	titleCharLimit   = 120
	contentCharLimit = 2000
	contentLines     = 3
)

// Model is the Note Board component. It owns the note state; the theme is
// handed to View by the parent.
type Model struct {
	board  *note.Board
	keymap *keymap.Registry
	md     *markdown.Renderer
	logger *slog.Logger

	// copyFn writes to the system clipboard
	copyFn func(string) error

	focus Focus

	// Grid state
	cursor    int
	scrollRow int
	columns   int

	// View dimensions
	width  int
	height int

	// Creation form
	formTitle    textinput.Model
	formContent  textarea.Model
	formLabel    note.Label
	defaultLabel note.Label
	formField    formField

	// Editor widgets, mirrored into the edit session draft on every change
	editTitle   textinput.Model
	editContent textarea.Model
	editLabel   note.Label
	editField   editField
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMarkdown sets the content renderer.
func WithMarkdown(r *markdown.Renderer) Option {
	return func(m *Model) { m.md = r }
}

// WithDefaultLabel sets the label the creation form starts with.
func WithDefaultLabel(l note.Label) Option {
	return func(m *Model) {
		if l.Valid() {
			m.defaultLabel = l
		}
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyFn = fn }
}

// New creates the board component around b.
func New(b *note.Board, km *keymap.Registry, opts ...Option) *Model {
	m := &Model{
		board:        b,
		keymap:       km,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		copyFn:       clipboard.WriteAll,
		defaultLabel: note.LabelOther,
		columns:      1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.md == nil {
		m.md = markdown.New(true)
	}

	m.formTitle = newTitleInput("Note Title")
	m.formContent = newContentArea("Note Content")
	m.formLabel = m.defaultLabel

	m.editTitle = newTitleInput("")
	m.editContent = newContentArea("")

	return m
}

func newTitleInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = titleCharLimit
	return ti
}

func newContentArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = contentCharLimit
	ta.SetHeight(contentLines)
	ta.Blur()
	return ta
}

// Init returns no initial command.
func (m *Model) Init() tea.Cmd { return nil }

// Board returns the underlying note state.
func (m *Model) Board() *note.Board { return m.board }

// Focus returns the focused area.
func (m *Model) Focus() Focus { return m.focus }

// Cursor returns the index of the selected card.
func (m *Model) Cursor() int { return m.cursor }

// Context returns the keymap context for the focused area.
func (m *Model) Context() string {
	switch m.focus {
	case FocusForm:
		return keymap.ContextBoardForm
	case FocusEdit:
		return keymap.ContextBoardEdit
	default:
		return keymap.ContextBoard
	}
}

// ConsumesTextInput reports whether printable keys should go to a text
// widget instead of global shortcuts.
func (m *Model) ConsumesTextInput() bool {
	switch m.focus {
	case FocusForm:
		return m.formField == formTitle || m.formField == formContent
	case FocusEdit:
		return m.editField == editTitle || m.editField == editContent
	}
	return false
}

// SetSize sets the area available to the board.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.columns = columnsFor(width)

	formInner := formWidth(width) - panelChrome - labelColWidth
	m.formTitle.Width = max(formInner-1, 1)
	m.formContent.SetWidth(max(formInner, 1))

	cardInner := cardWidth(width, m.columns) - panelChrome
	m.editTitle.Width = max(cardInner-1, 1)
	m.editContent.SetWidth(max(cardInner, 1))

	m.ensureCursorVisible()
}

// selected returns the note under the cursor.
func (m *Model) selected() (note.Note, bool) {
	notes := m.board.Notes()
	if m.cursor < 0 || m.cursor >= len(notes) {
		return note.Note{}, false
	}
	return notes[m.cursor], true
}

func (m *Model) clampCursor() {
	n := m.board.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	visible := visibleRows(m.height)
	row := m.cursor / max(m.columns, 1)
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+visible {
		m.scrollRow = row - visible + 1
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}
