package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/msg"
)

const errorToastDuration = 5 * time.Second

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := teaMsg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(v)

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.ready = true
		m.board.SetSize(m.width, m.contentHeight())
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(v)

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(v.Message, v.Duration, v.IsError)
		return m, nil

	case msg.ErrorMsg:
		m.logger.Error("error", "err", v.Err)
		m.ShowToast("Error: "+v.Err.Error(), errorToastDuration, true)
		return m, nil
	}

	// Widget messages such as cursor blinks
	return m, m.board.Update(teaMsg)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		switch m.keymap.Lookup(k.String(), keymap.ContextGlobal) {
		case keymap.CmdQuit:
			return m, tea.Quit
		case keymap.CmdToggleHelp:
			m.showHelp = false
		}
		if k.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	cmd := m.keymap.Lookup(k.String(), m.board.Context())

	// Printable keys belong to the text widget while typing.
	if isGlobalCommand(cmd) && !(m.board.ConsumesTextInput() && isTextKey(k)) {
		switch cmd {
		case keymap.CmdQuit:
			return m, tea.Quit
		case keymap.CmdToggleTheme:
			m.toggleTheme()
		case keymap.CmdToggleHelp:
			m.showHelp = true
		}
		return m, nil
	}

	return m, m.board.Update(k)
}

func isGlobalCommand(cmd string) bool {
	switch cmd {
	case keymap.CmdQuit, keymap.CmdToggleTheme, keymap.CmdToggleHelp:
		return true
	}
	return false
}

func isTextKey(k tea.KeyMsg) bool {
	return k.Type == tea.KeyRunes || k.Type == tea.KeySpace
}

const (
	regionBoard       = "board"
	regionThemeButton = "theme-button"
)

// updateHitRegions registers the clickable areas for the current layout.
func (m *Model) updateHitRegions() {
	m.mouse.HitMap.Clear()
	m.mouse.HitMap.AddRect(regionBoard, 0, headerHeight, m.width, m.contentHeight(), nil)
	for _, r := range m.board.Regions() {
		r.Rect.Y += headerHeight
		m.mouse.HitMap.Add(r.ID, r.Rect, r.Data)
	}
	if m.showFooter {
		w := lipgloss.Width(m.styles.Button.Render(m.themeButtonLabel()))
		m.mouse.HitMap.AddRect(regionThemeButton, m.width-w, m.height-1, w, 1, nil)
	}
}

// handleMouseMsg routes clicks to the theme button and the board.
func (m Model) handleMouseMsg(mm tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	m.updateHitRegions()

	action := m.mouse.HandleMouse(mm)
	onButton := action.Region != nil && action.Region.ID == regionThemeButton
	onBoard := action.Region != nil && !onButton

	switch action.Type {
	case mouse.ActionHover:
		m.themeButtonHover = onButton
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if onButton {
			m.toggleTheme()
			return m, nil
		}
		if onBoard {
			return m, m.board.Click(action.X, action.Y-headerHeight, action.Type == mouse.ActionDoubleClick)
		}
	case mouse.ActionScrollUp:
		if onBoard {
			m.board.Scroll(-1)
		}
	case mouse.ActionScrollDown:
		if onBoard {
			m.board.Scroll(1)
		}
	}
	return m, nil
}
