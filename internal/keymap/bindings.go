package keymap

// Command names dispatched by the app and the board.
const (
	CmdQuit        = "quit"
	CmdToggleTheme = "toggle-theme"
	CmdToggleHelp  = "toggle-help"

	CmdCursorUp    = "cursor-up"
	CmdCursorDown  = "cursor-down"
	CmdCursorLeft  = "cursor-left"
	CmdCursorRight = "cursor-right"
	CmdNewNote     = "new-note"
	CmdEditNote    = "edit-note"
	CmdDeleteNote  = "delete-note"
	CmdFavorite    = "toggle-favorite"
	CmdYankNote    = "yank-note"

	CmdNextField = "next-field"
	CmdPrevField = "prev-field"
	CmdSubmit    = "submit"
	CmdSave      = "save-note"
	CmdBack      = "back"
)

// Contexts
const (
	ContextGlobal    = "global"
	ContextBoard     = "board"
	ContextBoardForm = "board-form"
	ContextBoardEdit = "board-edit"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: CmdQuit, Context: ContextGlobal},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal},
		{Key: "t", Command: CmdToggleTheme, Context: ContextGlobal},
		{Key: "?", Command: CmdToggleHelp, Context: ContextGlobal},

		// Note grid
		{Key: "j", Command: CmdCursorDown, Context: ContextBoard},
		{Key: "down", Command: CmdCursorDown, Context: ContextBoard},
		{Key: "k", Command: CmdCursorUp, Context: ContextBoard},
		{Key: "up", Command: CmdCursorUp, Context: ContextBoard},
		{Key: "h", Command: CmdCursorLeft, Context: ContextBoard},
		{Key: "left", Command: CmdCursorLeft, Context: ContextBoard},
		{Key: "l", Command: CmdCursorRight, Context: ContextBoard},
		{Key: "right", Command: CmdCursorRight, Context: ContextBoard},
		{Key: "n", Command: CmdNewNote, Context: ContextBoard},
		{Key: "tab", Command: CmdNewNote, Context: ContextBoard},
		{Key: "e", Command: CmdEditNote, Context: ContextBoard},
		{Key: "enter", Command: CmdEditNote, Context: ContextBoard},
		{Key: "x", Command: CmdDeleteNote, Context: ContextBoard},
		{Key: "d", Command: CmdDeleteNote, Context: ContextBoard},
		{Key: "f", Command: CmdFavorite, Context: ContextBoard},
		{Key: "y", Command: CmdYankNote, Context: ContextBoard},

		// Creation form
		{Key: "tab", Command: CmdNextField, Context: ContextBoardForm},
		{Key: "shift+tab", Command: CmdPrevField, Context: ContextBoardForm},
		{Key: "ctrl+s", Command: CmdSubmit, Context: ContextBoardForm},
		{Key: "esc", Command: CmdBack, Context: ContextBoardForm},

		// In-place editor
		{Key: "tab", Command: CmdNextField, Context: ContextBoardEdit},
		{Key: "shift+tab", Command: CmdPrevField, Context: ContextBoardEdit},
		{Key: "ctrl+s", Command: CmdSave, Context: ContextBoardEdit},
		{Key: "esc", Command: CmdBack, Context: ContextBoardEdit},
	}
}

// commandNames are the short labels shown in the footer and help overlay.
var commandNames = map[string]string{
	CmdQuit:        "Quit",
	CmdToggleTheme: "Theme",
	CmdToggleHelp:  "Help",
	CmdCursorUp:    "Up",
	CmdCursorDown:  "Down",
	CmdCursorLeft:  "Left",
	CmdCursorRight: "Right",
	CmdNewNote:     "New",
	CmdEditNote:    "Edit",
	CmdDeleteNote:  "Delete",
	CmdFavorite:    "Favorite",
	CmdYankNote:    "Copy",
	CmdNextField:   "Next field",
	CmdPrevField:   "Prev field",
	CmdSubmit:      "Create",
	CmdSave:        "Save",
	CmdBack:        "Back",
}

// CommandName returns the display label for a command.
func CommandName(cmd string) string {
	if name, ok := commandNames[cmd]; ok {
		return name
	}
	return cmd
}
