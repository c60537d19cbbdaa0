package board

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/note"
)

// Label selectors cycle with the arrow keys regardless of user overrides.
var (
	labelPrevKey = key.NewBinding(key.WithKeys("left", "h"))
	labelNextKey = key.NewBinding(key.WithKeys("right", "l"))
	confirmKey   = key.NewBinding(key.WithKeys("enter"))
)

const errFieldsRequired = "Title and content are required"

// Update handles a message routed to the board.
func (m *Model) Update(teaMsg tea.Msg) tea.Cmd {
	switch v := teaMsg.(type) {
	case tea.KeyMsg:
		return m.handleKey(v)
	}
	return m.updateFocusedWidget(teaMsg)
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	switch m.focus {
	case FocusForm:
		return m.handleFormKey(k)
	case FocusEdit:
		return m.handleEditKey(k)
	default:
		return m.handleGridKey(k)
	}
}

func (m *Model) command(k tea.KeyMsg) string {
	if m.keymap == nil {
		return ""
	}
	return m.keymap.Lookup(k.String(), m.Context())
}

func (m *Model) handleGridKey(k tea.KeyMsg) tea.Cmd {
	switch m.command(k) {
	case keymap.CmdCursorUp:
		m.moveCursor(-m.columns)
	case keymap.CmdCursorDown:
		m.moveCursor(m.columns)
	case keymap.CmdCursorLeft:
		m.moveCursor(-1)
	case keymap.CmdCursorRight:
		m.moveCursor(1)
	case keymap.CmdNewNote:
		return m.focusForm()
	case keymap.CmdEditNote:
		return m.startEdit()
	case keymap.CmdDeleteNote:
		return m.deleteSelected()
	case keymap.CmdFavorite:
		return m.toggleFavorite()
	case keymap.CmdYankNote:
		return m.yankSelected()
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	n := m.board.Len()
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m *Model) deleteSelected() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}
	if !m.board.Delete(n.ID) {
		return nil
	}
	m.clampCursor()
	return msg.ShowToast(fmt.Sprintf("Deleted %q", n.Title), msg.DefaultToastDuration)
}

func (m *Model) toggleFavorite() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}
	fav, ok := m.board.ToggleFavorite(n.ID)
	if !ok {
		return nil
	}
	if fav {
		return msg.ShowToast(fmt.Sprintf("Added %q to favorites", n.Title), msg.DefaultToastDuration)
	}
	return msg.ShowToast(fmt.Sprintf("Removed %q from favorites", n.Title), msg.DefaultToastDuration)
}

func (m *Model) yankSelected() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.copyFn(n.Content); err != nil {
		return msg.ReportError(fmt.Errorf("copy note %d: %w", n.ID, err))
	}
	m.logger.Debug("note copied", "id", n.ID)
	return msg.ShowToast("Copied note content", msg.DefaultToastDuration)
}

// Creation form

func (m *Model) focusForm() tea.Cmd {
	m.focus = FocusForm
	return m.setFormField(formTitle)
}

func (m *Model) setFormField(f formField) tea.Cmd {
	m.formField = f
	m.formTitle.Blur()
	m.formContent.Blur()
	switch f {
	case formTitle:
		return m.formTitle.Focus()
	case formContent:
		return m.formContent.Focus()
	}
	return nil
}

func (m *Model) leaveForm() {
	m.formTitle.Blur()
	m.formContent.Blur()
	m.focus = FocusGrid
}

func (m *Model) handleFormKey(k tea.KeyMsg) tea.Cmd {
	switch m.command(k) {
	case keymap.CmdNextField:
		return m.setFormField((m.formField + 1) % formFieldCount)
	case keymap.CmdPrevField:
		return m.setFormField((m.formField + formFieldCount - 1) % formFieldCount)
	case keymap.CmdSubmit:
		return m.submitForm()
	case keymap.CmdBack:
		m.leaveForm()
		return nil
	}

	switch m.formField {
	case formLabel:
		switch {
		case key.Matches(k, labelPrevKey):
			m.formLabel = m.formLabel.Prev()
		case key.Matches(k, labelNextKey):
			m.formLabel = m.formLabel.Next()
		case key.Matches(k, confirmKey):
			return m.setFormField(formSubmit)
		}
		return nil
	case formSubmit:
		if key.Matches(k, confirmKey) {
			return m.submitForm()
		}
		return nil
	case formTitle:
		if key.Matches(k, confirmKey) {
			return m.setFormField(formContent)
		}
	}
	return m.updateFocusedWidget(k)
}

// FormDraft returns the values currently typed into the creation form.
func (m *Model) FormDraft() note.Fields {
	return note.Fields{
		Title:   m.formTitle.Value(),
		Content: m.formContent.Value(),
		Label:   m.formLabel,
	}
}

func (m *Model) submitForm() tea.Cmd {
	fields := m.FormDraft()
	if fields.Blank() {
		return msg.ShowErrorToast(errFieldsRequired, msg.DefaultToastDuration)
	}
	created, err := m.board.Create(fields)
	if err != nil {
		return msg.ReportError(err)
	}
	m.resetForm()
	m.cursor = m.board.Len() - 1
	m.ensureCursorVisible()
	return tea.Batch(
		m.setFormField(formTitle),
		msg.ShowToast(fmt.Sprintf("Created %q", created.Title), msg.DefaultToastDuration),
	)
}

func (m *Model) resetForm() {
	m.formTitle.Reset()
	m.formContent.Reset()
	m.formLabel = m.defaultLabel
}

// In-place editor

func (m *Model) startEdit() tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}
	if !m.board.Session().Editing(n.ID) {
		// Beginning a new session drops any other card's unsaved draft.
		if !m.board.BeginEdit(n.ID) {
			return nil
		}
	}
	m.loadDraft(m.board.Session().Draft())
	m.focus = FocusEdit
	return m.setEditField(editTitle)
}

func (m *Model) loadDraft(f note.Fields) {
	m.editTitle.SetValue(f.Title)
	m.editTitle.CursorEnd()
	m.editContent.SetValue(f.Content)
	m.editLabel = f.Label
}

func (m *Model) setEditField(f editField) tea.Cmd {
	m.editField = f
	m.editTitle.Blur()
	m.editContent.Blur()
	switch f {
	case editTitle:
		return m.editTitle.Focus()
	case editContent:
		return m.editContent.Focus()
	}
	return nil
}

func (m *Model) leaveEdit() {
	m.editTitle.Blur()
	m.editContent.Blur()
	m.focus = FocusGrid
}

func (m *Model) syncDraft() {
	m.board.EditDraft(note.Fields{
		Title:   m.editTitle.Value(),
		Content: m.editContent.Value(),
		Label:   m.editLabel,
	})
}

func (m *Model) handleEditKey(k tea.KeyMsg) tea.Cmd {
	if !m.board.Session().Active() {
		m.leaveEdit()
		return nil
	}

	switch m.command(k) {
	case keymap.CmdNextField:
		return m.setEditField((m.editField + 1) % editFieldCount)
	case keymap.CmdPrevField:
		return m.setEditField((m.editField + editFieldCount - 1) % editFieldCount)
	case keymap.CmdSave:
		return m.saveEdit()
	case keymap.CmdBack:
		m.leaveEdit()
		return nil
	}

	switch m.editField {
	case editLabel:
		switch {
		case key.Matches(k, labelPrevKey):
			m.editLabel = m.editLabel.Prev()
		case key.Matches(k, labelNextKey):
			m.editLabel = m.editLabel.Next()
		default:
			return nil
		}
		m.syncDraft()
		return nil
	case editTitle:
		if key.Matches(k, confirmKey) {
			return m.setEditField(editContent)
		}
	}

	cmd := m.updateFocusedWidget(k)
	m.syncDraft()
	return cmd
}

func (m *Model) saveEdit() tea.Cmd {
	saved, err := m.board.SaveEdit()
	m.leaveEdit()
	if err != nil {
		return msg.ReportError(err)
	}
	if !saved {
		return nil
	}
	return msg.ShowToast("Note saved", msg.DefaultToastDuration)
}

// updateFocusedWidget forwards a message to the text widget holding focus.
func (m *Model) updateFocusedWidget(teaMsg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusForm:
		switch m.formField {
		case formTitle:
			m.formTitle, cmd = m.formTitle.Update(teaMsg)
		case formContent:
			m.formContent, cmd = m.formContent.Update(teaMsg)
		}
	case FocusEdit:
		switch m.editField {
		case editTitle:
			m.editTitle, cmd = m.editTitle.Update(teaMsg)
		case editContent:
			m.editContent, cmd = m.editContent.Update(teaMsg)
		}
	}
	return cmd
}
