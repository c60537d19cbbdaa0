package keymap

import "testing"

func newDefaults() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func TestLookup(t *testing.T) {
	r := newDefaults()

	tests := []struct {
		key, context, want string
	}{
		{"j", ContextBoard, CmdCursorDown},
		{"tab", ContextBoard, CmdNewNote},
		{"tab", ContextBoardForm, CmdNextField},
		{"ctrl+s", ContextBoardEdit, CmdSave},
		{"ctrl+s", ContextBoardForm, CmdSubmit},
		{"t", ContextBoard, CmdToggleTheme}, // falls through to global
		{"ctrl+c", ContextBoardEdit, CmdQuit},
		{"z", ContextBoard, ""},
	}
	for _, tt := range tests {
		if got := r.Lookup(tt.key, tt.context); got != tt.want {
			t.Errorf("Lookup(%q, %q) = %q, want %q", tt.key, tt.context, got, tt.want)
		}
	}
}

func TestUserOverride(t *testing.T) {
	r := newDefaults()
	r.SetUserOverride("ctrl+t", CmdToggleTheme)
	r.SetUserOverride("j", CmdFavorite)

	if got := r.Lookup("ctrl+t", ContextBoardEdit); got != CmdToggleTheme {
		t.Errorf("override lookup = %q", got)
	}
	if got := r.Lookup("j", ContextBoard); got != CmdFavorite {
		t.Errorf("override should win over context binding, got %q", got)
	}

	keys := r.KeysFor(CmdCursorDown, ContextBoard)
	for _, k := range keys {
		if k == "j" {
			t.Error("overridden key should not be listed for its old command")
		}
	}
}

func TestRegister_Replaces(t *testing.T) {
	r := newDefaults()
	before := len(r.BindingsForContext(ContextBoard))
	r.Register(Binding{Key: "y", Command: CmdFavorite, Context: ContextBoard})

	if got := r.Lookup("y", ContextBoard); got != CmdFavorite {
		t.Errorf("Lookup(y) = %q, want %q", got, CmdFavorite)
	}
	if after := len(r.BindingsForContext(ContextBoard)); after != before {
		t.Errorf("replacing a binding changed the count: %d -> %d", before, after)
	}
}

func TestKeysFor(t *testing.T) {
	r := newDefaults()
	keys := r.KeysFor(CmdDeleteNote, ContextBoard)
	if len(keys) != 2 || keys[0] != "x" || keys[1] != "d" {
		t.Errorf("KeysFor(delete) = %v", keys)
	}
	if keys := r.KeysFor(CmdQuit, ContextBoardForm); len(keys) != 2 {
		t.Errorf("global keys should be included, got %v", keys)
	}
}

func TestCommandName(t *testing.T) {
	if CommandName(CmdFavorite) != "Favorite" {
		t.Error("unexpected favorite name")
	}
	if CommandName("custom") != "custom" {
		t.Error("unknown commands should fall back to their id")
	}
}
