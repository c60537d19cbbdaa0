package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/noteboard/internal/note"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/ui"
)

// View renders the board into width x height cells using the given styles.
func (m *Model) View(width, height int, st styles.Styles) string {
	if width != m.width || height != m.height {
		m.SetSize(width, height)
	}
	m.applyWidgetStyles(st)

	top := m.renderTopRow(width, st)
	grid := m.renderGrid(width, gridHeight(height), st)
	return lipgloss.JoinVertical(lipgloss.Left, top, grid)
}

func (m *Model) applyWidgetStyles(st styles.Styles) {
	for _, ti := range []*textinput.Model{&m.formTitle, &m.editTitle} {
		ti.TextStyle = st.Body
		ti.PlaceholderStyle = st.Muted
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(st.Accent)
	}
	for _, ta := range []*textarea.Model{&m.formContent, &m.editContent} {
		ta.FocusedStyle.Text = st.Body
		ta.FocusedStyle.CursorLine = st.Body
		ta.FocusedStyle.Placeholder = st.Muted
		ta.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(st.Accent)
		ta.BlurredStyle.Text = st.Muted
		ta.BlurredStyle.CursorLine = st.Muted
		ta.BlurredStyle.Placeholder = st.Muted
		ta.BlurredStyle.Prompt = st.Muted
	}
}

func (m *Model) renderTopRow(width int, st styles.Styles) string {
	fw := formWidth(width)
	form := m.renderForm(fw, st)
	favs := m.renderFavorites(width-fw, st)
	return lipgloss.JoinHorizontal(lipgloss.Top, form, favs)
}

func (m *Model) renderForm(width int, st styles.Styles) string {
	active := m.focus == FocusForm
	fieldLabel := func(name string, f formField) string {
		style := st.Muted
		if active && m.formField == f {
			style = st.Label
		}
		return style.Width(labelColWidth).Render(name)
	}

	btn := st.Button
	if active && m.formField == formSubmit {
		btn = st.ButtonFocus
	}

	lines := []string{
		st.Title.Render("New note"),
		lipgloss.JoinHorizontal(lipgloss.Top, fieldLabel("Title", formTitle), m.formTitle.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, fieldLabel("Content", formContent), m.formContent.View()),
		fieldLabel("Label", formLabel) +
			labelSelector(m.formLabel, active && m.formField == formLabel, st) + "  " +
			btn.Render("Create Note"),
	}

	panel := st.Panel
	if active {
		panel = st.PanelActive
	}
	return panel.Width(max(width-2, 1)).Height(formBodyLines).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFavorites(width int, st styles.Styles) string {
	inner := width - panelChrome
	lines := []string{st.Title.Render("Favorites")}

	favs := m.board.Favorites()
	room := formBodyLines - 1
	if len(favs) == 0 {
		lines = append(lines, st.Muted.Render("No favorites yet"))
	}
	for i, n := range favs {
		if i == room-1 && len(favs) > room {
			lines = append(lines, st.Muted.Render(fmt.Sprintf("+%d more", len(favs)-i)))
			break
		}
		lines = append(lines, st.Favorite.Render("♥ ")+st.Body.Render(ui.Fit(n.Title, inner-2)))
	}

	return st.Panel.Width(max(width-2, 1)).Height(formBodyLines).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderGrid(width, height int, st styles.Styles) string {
	notes := m.board.Notes()
	if len(notes) == 0 {
		return st.Muted.Padding(1, 2).Render("No notes yet. Press n to create one.")
	}

	cols := max(m.columns, 1)
	cw := cardWidth(width, cols)
	first := m.scrollRow * cols
	rows := max(1, height/cardHeight)

	var out []string
	for r := 0; r < rows; r++ {
		start := first + r*cols
		if start >= len(notes) {
			break
		}
		end := min(start+cols, len(notes))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(notes[i], i == m.cursor, cw, st))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCard(n note.Note, selected bool, width int, st styles.Styles) string {
	inner := width - panelChrome
	sess := m.board.Session()

	style := st.Card
	if selected && m.focus == FocusGrid {
		style = st.CardSelected
	}

	var body string
	if m.focus == FocusEdit && sess.Editing(n.ID) {
		style = st.CardEditing
		body = m.renderEditor(st)
	} else {
		body = m.renderNoteBody(n, sess.Editing(n.ID), inner, st)
	}
	return style.Width(width - 2).Height(cardBodyLines).Render(body)
}

func (m *Model) renderNoteBody(n note.Note, pending bool, inner int, st styles.Styles) string {
	heart := st.Muted.Render("♡")
	if m.board.IsFavorite(n.ID) {
		heart = st.Favorite.Render("♥")
	}
	header := heart + " " + st.Title.Render(ui.Fit(ui.FirstLine(n.Title), inner-2))

	content := m.md.Render(n.Content, st.Theme.Colors.MarkdownTheme, inner)

	footer := st.Label.Render(n.Label.String())
	if pending {
		footer += st.Muted.Render("  unsaved edit")
	}

	return strings.Join([]string{
		header,
		clampLines(content, contentLines, inner),
		footer,
	}, "\n")
}

func (m *Model) renderEditor(st styles.Styles) string {
	hint := st.Muted.Render("  ctrl+s save")
	return strings.Join([]string{
		m.editTitle.View(),
		m.editContent.View(),
		labelSelector(m.editLabel, m.editField == editLabel, st) + hint,
	}, "\n")
}

func labelSelector(l note.Label, focused bool, st styles.Styles) string {
	text := "‹ " + l.String() + " ›"
	if focused {
		return st.Label.Bold(true).Render(text)
	}
	return st.Label.Render(text)
}

// clampLines returns exactly n lines of s, each cut to width, skipping
// leading blank lines.
func clampLines(s string, n, width int) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[0])) == "" {
		lines = lines[1:]
	}
	out := make([]string, n)
	for i := 0; i < n && i < len(lines); i++ {
		out[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(out, "\n")
}
