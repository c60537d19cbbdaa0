package board

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/markdown"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/note"
	"github.com/marcus/noteboard/internal/styles"
)

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	b := note.NewBoard()
	if err := b.Seed(note.Samples()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	opts = append([]Option{WithMarkdown(markdown.New(false))}, opts...)
	m := New(b, km, opts...)
	m.SetSize(56, 30)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = m.Update(k)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// toasts runs cmd and collects toast messages. Commands that do not return
// promptly, such as cursor blinks, are skipped.
func toasts(cmd tea.Cmd) []msg.ToastMsg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var out tea.Msg
	select {
	case out = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	switch v := out.(type) {
	case msg.ToastMsg:
		return []msg.ToastMsg{v}
	case tea.BatchMsg:
		var all []msg.ToastMsg
		for _, c := range v {
			all = append(all, toasts(c)...)
		}
		return all
	}
	return nil
}

func TestCreateFromForm(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("n"))
	if m.Focus() != FocusForm {
		t.Fatalf("focus = %v, want form", m.Focus())
	}
	if !m.ConsumesTextInput() {
		t.Error("title field should consume text input")
	}

	typeText(m, "Plan")
	send(m, keyOf(tea.KeyTab))
	typeText(m, "Write it down")
	got := toasts(send(m, keyOf(tea.KeyCtrlS)))

	if m.Board().Len() != 5 {
		t.Fatalf("Len = %d, want 5", m.Board().Len())
	}
	created := m.Board().Notes()[4]
	if created.ID != 5 || created.Title != "Plan" || created.Content != "Write it down" {
		t.Errorf("created = %+v", created)
	}
	if created.Label != note.LabelOther {
		t.Errorf("Label = %q, want other", created.Label)
	}
	if d := m.FormDraft(); d.Title != "" || d.Content != "" {
		t.Errorf("form not reset: %+v", d)
	}
	if m.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", m.Cursor())
	}
	if len(got) != 1 || got[0].IsError || !strings.Contains(got[0].Message, "Plan") {
		t.Errorf("toasts = %+v", got)
	}
}

func TestCreateBlankShowsError(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("n"))
	typeText(m, "Only a title")
	got := toasts(send(m, keyOf(tea.KeyCtrlS)))

	if m.Board().Len() != 4 {
		t.Errorf("Len = %d, want 4", m.Board().Len())
	}
	if len(got) != 1 || !got[0].IsError {
		t.Fatalf("toasts = %+v, want one error", got)
	}
	if m.FormDraft().Title != "Only a title" {
		t.Error("form should keep the typed title")
	}
}

func TestFormLabelAndSubmitButton(t *testing.T) {
	m := newTestModel(t, WithDefaultLabel(note.LabelStudy))

	send(m, runes("n"))
	typeText(m, "Read")
	send(m, keyOf(tea.KeyEnter)) // moves to content
	typeText(m, "chapter 7")
	send(m, keyOf(tea.KeyTab))
	if m.ConsumesTextInput() {
		t.Error("label selector should not consume text input")
	}
	send(m, keyOf(tea.KeyRight))
	if got := m.FormDraft().Label; got != note.LabelOther {
		t.Fatalf("label = %q, want other", got)
	}
	send(m, keyOf(tea.KeyLeft), keyOf(tea.KeyLeft))
	if got := m.FormDraft().Label; got != note.LabelPersonal {
		t.Fatalf("label = %q, want personal", got)
	}

	send(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	created := m.Board().Notes()[4]
	if created.Label != note.LabelPersonal || created.Content != "chapter 7" {
		t.Errorf("created = %+v", created)
	}
	if got := m.FormDraft().Label; got != note.LabelStudy {
		t.Errorf("label after reset = %q, want study", got)
	}
}

func TestFormEscReturnsToGrid(t *testing.T) {
	m := newTestModel(t)
	send(m, runes("n"), keyOf(tea.KeyEsc))
	if m.Focus() != FocusGrid {
		t.Errorf("focus = %v, want grid", m.Focus())
	}
	if m.Context() != keymap.ContextBoard {
		t.Errorf("Context = %q", m.Context())
	}
}

func TestGridNavigation(t *testing.T) {
	m := newTestModel(t) // two columns

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{runes("l"), 1},
		{runes("j"), 3},
		{runes("j"), 3},
		{runes("k"), 1},
		{runes("h"), 0},
		{runes("h"), 0},
		{keyOf(tea.KeyDown), 2},
		{keyOf(tea.KeyRight), 3},
		{runes("l"), 3},
	}
	for i, tt := range tests {
		send(m, tt.key)
		if m.Cursor() != tt.want {
			t.Fatalf("step %d (%s): cursor = %d, want %d", i, tt.key, m.Cursor(), tt.want)
		}
	}
}

func TestFavoriteKey(t *testing.T) {
	m := newTestModel(t)

	got := toasts(send(m, runes("f")))
	if !m.Board().IsFavorite(1) {
		t.Fatal("note 1 should be a favorite")
	}
	if len(got) != 1 || !strings.Contains(got[0].Message, "Added") {
		t.Errorf("toasts = %+v", got)
	}

	send(m, runes("f"))
	if m.Board().IsFavorite(1) {
		t.Error("second toggle should remove the favorite")
	}
}

func TestDeleteSelected(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("l"), runes("j"), runes("f")) // note 4
	send(m, runes("x"))

	if m.Board().Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Board().Len())
	}
	if _, ok := m.Board().Get(4); ok {
		t.Error("note 4 should be gone")
	}
	if len(m.Board().Favorites()) != 0 {
		t.Error("deleted favorite should leave the favorites set")
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor())
	}
}

func TestDeleteLastNote(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 4; i++ {
		send(m, runes("d"))
	}
	if m.Board().Len() != 0 || m.Cursor() != 0 {
		t.Fatalf("Len = %d cursor = %d", m.Board().Len(), m.Cursor())
	}
	if cmd := send(m, runes("d"), runes("f"), runes("e")); cmd != nil {
		t.Error("actions on an empty board should be no-ops")
	}
}

func TestEditAndSave(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("e"))
	if m.Focus() != FocusEdit {
		t.Fatalf("focus = %v, want edit", m.Focus())
	}
	if !m.Board().Session().Editing(1) {
		t.Fatal("session should target note 1")
	}

	typeText(m, "!")
	if got := m.Board().Session().Draft().Title; got != "Weekly sync!" {
		t.Errorf("draft title = %q", got)
	}
	if n, _ := m.Board().Get(1); n.Title != "Weekly sync" {
		t.Errorf("note changed before save: %q", n.Title)
	}

	send(m, keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeyRight))
	if got := m.Board().Session().Draft().Label; got != note.LabelPersonal {
		t.Errorf("draft label = %q, want personal", got)
	}

	got := toasts(send(m, keyOf(tea.KeyCtrlS)))
	n, _ := m.Board().Get(1)
	if n.Title != "Weekly sync!" || n.Label != note.LabelPersonal {
		t.Errorf("saved note = %+v", n)
	}
	if m.Board().Session().Active() {
		t.Error("session should be idle after save")
	}
	if m.Focus() != FocusGrid {
		t.Errorf("focus = %v, want grid", m.Focus())
	}
	if len(got) != 1 || got[0].IsError {
		t.Errorf("toasts = %+v", got)
	}
}

func TestEscKeepsDraft(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("e"))
	typeText(m, "?")
	send(m, keyOf(tea.KeyEsc))

	if m.Focus() != FocusGrid {
		t.Fatalf("focus = %v, want grid", m.Focus())
	}
	if !m.Board().Session().Editing(1) {
		t.Fatal("esc should keep the session")
	}

	send(m, keyOf(tea.KeyEnter))
	if got := m.editTitle.Value(); got != "Weekly sync?" {
		t.Errorf("resumed title = %q", got)
	}
}

func TestEditingAnotherCardDiscardsDraft(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("e"))
	typeText(m, " changed")
	send(m, keyOf(tea.KeyEsc), runes("l"), runes("e"))

	if !m.Board().Session().Editing(2) {
		t.Fatal("session should move to note 2")
	}
	if got := m.editTitle.Value(); got != "Groceries" {
		t.Errorf("editor title = %q", got)
	}
	send(m, keyOf(tea.KeyCtrlS))
	if n, _ := m.Board().Get(1); n.Title != "Weekly sync" {
		t.Errorf("note 1 = %q, want unchanged", n.Title)
	}
}

func TestDeleteEditedNoteClearsSession(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("e"), keyOf(tea.KeyEsc), runes("x"))
	if m.Board().Session().Active() {
		t.Error("deleting the edited note should clear the session")
	}
}

func TestYank(t *testing.T) {
	var copied string
	m := newTestModel(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	send(m, runes("l"))
	got := toasts(send(m, runes("y")))
	if copied != "- oat milk\n- coffee beans\n- lemons" {
		t.Errorf("copied = %q", copied)
	}
	if len(got) != 1 || got[0].IsError {
		t.Errorf("toasts = %+v", got)
	}
}

func TestYankError(t *testing.T) {
	m := newTestModel(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	got, ok := send(m, runes("y"))().(msg.ErrorMsg)
	if !ok {
		t.Fatal("a failed copy should report an error")
	}
	if !strings.Contains(got.Err.Error(), "no clipboard") {
		t.Errorf("Err = %v", got.Err)
	}
}

func TestGlobalKeysTypedIntoForm(t *testing.T) {
	m := newTestModel(t)

	send(m, runes("n"))
	typeText(m, "tq?")
	if got := m.FormDraft().Title; got != "tq?" {
		t.Errorf("title = %q, want %q", got, "tq?")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	st := styles.New(styles.LightTheme)

	out := m.View(100, 30, st)
	for _, want := range []string{"New note", "Create Note", "Favorites", "No favorites yet", "Weekly sync", "Groceries", "♡"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	send(m, runes("f"))
	out = m.View(100, 30, st)
	if strings.Contains(out, "No favorites yet") || !strings.Contains(out, "♥") {
		t.Error("favorite should appear in the summary")
	}

	send(m, runes("e"))
	out = m.View(100, 30, st)
	if !strings.Contains(out, "ctrl+s save") {
		t.Error("edited card should show the editor")
	}
}

func TestViewEmptyBoard(t *testing.T) {
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	m := New(note.NewBoard(), km, WithMarkdown(markdown.New(false)))

	out := m.View(80, 24, styles.New(styles.DarkTheme))
	if !strings.Contains(out, "No notes yet") {
		t.Errorf("view = %q", out)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := newTestModel(t)
	m.SetSize(56, formHeight+cardHeight) // one visible row

	send(m, runes("j"))
	if m.scrollRow != 1 {
		t.Errorf("scrollRow = %d, want 1", m.scrollRow)
	}
	send(m, runes("k"))
	if m.scrollRow != 0 {
		t.Errorf("scrollRow = %d, want 0", m.scrollRow)
	}
}

func TestClickSelectsAndEdits(t *testing.T) {
	m := newTestModel(t) // 56 wide: two 28-cell columns

	// second column, second card row
	y := formHeight + cardHeight + 2
	if idx, ok := m.CardAt(30, y); !ok || idx != 3 {
		t.Fatalf("CardAt = %d, %v; want 3", idx, ok)
	}
	if _, ok := m.CardAt(30, formHeight+2*cardHeight+1); ok {
		t.Error("no card below the last row")
	}

	m.Click(30, y, false)
	if m.Cursor() != 3 || m.Focus() != FocusGrid {
		t.Fatalf("cursor = %d focus = %v", m.Cursor(), m.Focus())
	}

	m.Click(2, formHeight+1, true)
	if m.Focus() != FocusEdit || !m.Board().Session().Editing(1) {
		t.Fatal("double click should edit note 1")
	}

	m.Click(2, 2, false)
	if m.Focus() != FocusForm {
		t.Errorf("focus = %v, want form", m.Focus())
	}
	if !m.Board().Session().Editing(1) {
		t.Error("leaving the editor by mouse should keep the draft")
	}
}

func TestScrollMovesByRows(t *testing.T) {
	m := newTestModel(t)

	m.Scroll(3)
	if m.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", m.Cursor())
	}
	m.Scroll(-3)
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor())
	}
}

func TestRegions(t *testing.T) {
	m := newTestModel(t) // 56 wide: two 28-cell columns

	regions := m.Regions()
	if len(regions) != 5 {
		t.Fatalf("len(Regions) = %d, want form plus 4 cards", len(regions))
	}
	if regions[0].ID != RegionForm || !regions[0].Rect.Contains(2, 2) {
		t.Errorf("first region = %+v, want the form", regions[0])
	}

	last := regions[4]
	if last.ID != CardRegionID(4) || last.Data != 3 {
		t.Errorf("last region = %+v, want note 4 at index 3", last)
	}
	if !last.Rect.Contains(30, formHeight+cardHeight+2) {
		t.Errorf("note 4 region %+v misses its card", last.Rect)
	}
	if regions[1].ID == regions[2].ID {
		t.Error("cards share a region ID")
	}
}

func TestNoteActionsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	nb := note.NewBoard(note.WithLogger(logger))
	if err := nb.Seed(note.Samples()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	m := New(nb, km,
		WithLogger(logger),
		WithMarkdown(markdown.New(false)),
		WithClipboard(func(string) error { return nil }),
	)
	m.SetSize(56, 30)

	send(m, runes("e"))
	typeText(m, "?")
	send(m, keyOf(tea.KeyEsc), keyOf(tea.KeyRight), runes("e"))
	typeText(m, "!")
	send(m, keyOf(tea.KeyCtrlS))

	send(m, runes("n"))
	typeText(m, "Plan")
	send(m, keyOf(tea.KeyTab))
	typeText(m, "Write it down")
	send(m, keyOf(tea.KeyCtrlS), keyOf(tea.KeyEsc))
	send(m, runes("d"), runes("y"))

	log := buf.String()
	for _, line := range []string{"edit session discarded", "note saved", "note created", "note deleted", "note copied"} {
		if n := strings.Count(log, line); n != 1 {
			t.Errorf("%q logged %d times, want 1", line, n)
		}
	}
}
