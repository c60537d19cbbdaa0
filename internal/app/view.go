package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/noteboard/internal/keymap"
)

const (
	headerHeight = 2 // header line + spacing
	footerHeight = 1
	minWidth     = 60
	minHeight    = 20
)

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	st := m.styles

	// Show warning if terminal is too small
	if m.width < minWidth || m.height < minHeight {
		warning := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return st.App.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			st.ToastError.Render(warning)))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent(m.width, m.contentHeight()))
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	bg := st.App.Width(m.width).Height(m.height).MaxHeight(m.height).Render(b.String())
	if m.showHelp {
		return m.renderHelpOverlay(bg)
	}
	return bg
}

// renderHeader renders the app name on the left and the theme on the right.
func (m Model) renderHeader() string {
	st := m.styles
	title := st.Header.Render("Note Board")
	count := st.Muted.Render(fmt.Sprintf("  %d notes", m.board.Board().Len()))
	right := st.Muted.Render(m.styles.Theme.DisplayName + " theme")

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(count) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return title + count + strings.Repeat(" ", spacing) + right
}

func (m Model) renderContent(width, height int) string {
	content := m.board.View(width, height, m.styles)
	// MaxHeight truncates tall content so the header stays on screen.
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// renderFooter renders key hints, the toast and the theme toggle button.
func (m Model) renderFooter() string {
	st := m.styles

	var status string
	if m.statusMsg != "" {
		toastStyle := st.ToastSuccess
		if m.statusIsError {
			toastStyle = st.ToastError
		}
		status = toastStyle.Render(m.statusMsg)
	}

	buttonStyle := st.Button
	if m.themeButtonHover {
		buttonStyle = st.ButtonFocus
	}
	button := buttonStyle.Render(m.themeButtonLabel())

	statusWidth := lipgloss.Width(status)
	buttonWidth := lipgloss.Width(button)
	minSpacing := 4
	availableForHints := m.width - statusWidth - buttonWidth - minSpacing

	hintsStr := m.renderHintLineTruncated(m.footerHints(), availableForHints)

	spacing := m.width - lipgloss.Width(hintsStr) - statusWidth - buttonWidth
	if spacing < 0 {
		spacing = 0
	}

	footer := hintsStr + strings.Repeat(" ", spacing/2) + status + strings.Repeat(" ", spacing-(spacing/2)) + button
	return st.Footer.Width(m.width).MaxWidth(m.width).Render(footer)
}

func (m Model) themeButtonLabel() string {
	key := "t"
	if keys := m.keymap.KeysFor(keymap.CmdToggleTheme, keymap.ContextGlobal); len(keys) > 0 {
		key = keys[0]
	}
	next := "Dark"
	if m.selector.IsDark() {
		next = "Light"
	}
	return fmt.Sprintf("%s %s mode", key, next)
}

type footerHint struct {
	keys  string
	label string
}

// footerHints lists the active context's commands first, then the
// essential globals.
func (m Model) footerHints() []footerHint {
	ctx := m.board.Context()
	keysByCmd := bindingKeysByCommand(m.keymap.BindingsForContext(ctx))

	var hints []footerHint
	for _, cmd := range contextHintOrder[ctx] {
		keys := keysByCmd[cmd]
		if len(keys) == 0 {
			continue
		}
		hints = append(hints, footerHint{keys: formatBindingKeys(keys), label: keymap.CommandName(cmd)})
	}

	globals := bindingKeysByCommand(m.keymap.BindingsForContext(keymap.ContextGlobal))
	for _, cmd := range []string{keymap.CmdToggleHelp, keymap.CmdQuit} {
		if keys := globals[cmd]; len(keys) > 0 {
			hints = append(hints, footerHint{keys: keys[0], label: keymap.CommandName(cmd)})
		}
	}
	return hints
}

var contextHintOrder = map[string][]string{
	keymap.ContextBoard: {
		keymap.CmdNewNote, keymap.CmdEditNote, keymap.CmdFavorite,
		keymap.CmdDeleteNote, keymap.CmdYankNote,
	},
	keymap.ContextBoardForm: {keymap.CmdNextField, keymap.CmdSubmit, keymap.CmdBack},
	keymap.ContextBoardEdit: {keymap.CmdNextField, keymap.CmdSave, keymap.CmdBack},
}

var contextTitles = map[string]string{
	keymap.ContextBoard:     "Board",
	keymap.ContextBoardForm: "New note",
	keymap.ContextBoardEdit: "Editing",
}

func bindingKeysByCommand(bindings []keymap.Binding) map[string][]string {
	keysByCmd := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		keysByCmd[b.Command] = append(keysByCmd[b.Command], b.Key)
	}
	return keysByCmd
}

// renderHintLineTruncated renders hints but stops adding when maxWidth is exceeded.
func (m Model) renderHintLineTruncated(hints []footerHint, maxWidth int) string {
	if len(hints) == 0 || maxWidth <= 0 {
		return ""
	}
	var result string
	for _, hint := range hints {
		part := fmt.Sprintf("%s %s", m.styles.KeyHint.Render(hint.keys), hint.label)
		candidate := part
		if result != "" {
			candidate = result + "  " + part
		}
		if lipgloss.Width(candidate) > maxWidth {
			break
		}
		result = candidate
	}
	return result
}

// renderHelpOverlay renders the help modal over content.
func (m Model) renderHelpOverlay(content string) string {
	modal := m.styles.ModalBox.Render(m.buildHelpContent())
	return m.overlay.Compose(content, modal, m.width, m.height)
}

// buildHelpContent creates the help modal content.
func (m Model) buildHelpContent() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	b.WriteString(st.Title.Render("Global"))
	b.WriteString("\n")
	m.renderBindingSection(&b, keymap.ContextGlobal)
	b.WriteString("\n")

	// Active board context
	ctx := m.board.Context()
	b.WriteString(st.Title.Render(contextTitles[ctx]))
	b.WriteString("\n")
	m.renderBindingSection(&b, ctx)
	b.WriteString("\n")

	b.WriteString(st.Muted.Render("Press ? or esc to close"))
	return b.String()
}

// renderBindingSection renders bindings for a context.
func (m Model) renderBindingSection(b *strings.Builder, context string) {
	bindings := m.keymap.BindingsForContext(context)
	keysByCmd := bindingKeysByCommand(bindings)

	seen := make(map[string]bool)
	for _, binding := range bindings {
		if seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true

		padded := fmt.Sprintf("%-11s", formatBindingKeys(keysByCmd[binding.Command]))
		fmt.Fprintf(b, "  %s %s\n", m.styles.Muted.Render(padded), keymap.CommandName(binding.Command))
	}
}

// formatBindingKeys formats multiple keys into a display string.
func formatBindingKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, ", ")
}
