package note

import "fmt"

// Session is a read-only snapshot of the edit session. The zero value is the
// idle session.
type Session struct {
	active bool
	noteID int
	draft  Fields
}

// Active reports whether a note is being edited.
func (s Session) Active() bool { return s.active }

// NoteID returns the id of the note being edited, or 0 when idle.
func (s Session) NoteID() int {
	if !s.active {
		return 0
	}
	return s.noteID
}

// Draft returns the uncommitted scratch copy. It is the zero Fields when idle.
func (s Session) Draft() Fields {
	if !s.active {
		return Fields{}
	}
	return s.draft
}

// Editing reports whether the session targets the note with the given id.
func (s Session) Editing(id int) bool {
	return s.active && s.noteID == id
}

// BeginEdit starts editing the note with the given id, copying its fields
// into a fresh draft. An unsaved draft for another note is dropped without
// warning. It returns false if the note does not exist.
func (b *Board) BeginEdit(id int) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	if b.session.active && b.session.noteID != id {
		b.logger.Debug("edit session discarded", "id", b.session.noteID)
	}
	b.session = Session{active: true, noteID: id, draft: b.notes[i].Fields()}
	return true
}

// EditDraft replaces the draft fields. The collection is untouched until
// SaveEdit. It returns false when no session is active.
func (b *Board) EditDraft(f Fields) bool {
	if !b.session.active {
		return false
	}
	b.session.draft = f
	return true
}

// SaveEdit commits the draft into the collection and ends the session.
// With no active session it is a no-op returning (false, nil). If the
// edited note has disappeared the session is dropped and ErrNoteNotFound
// is returned.
func (b *Board) SaveEdit() (bool, error) {
	if !b.session.active {
		return false, nil
	}
	s := b.session
	b.session = Session{}
	i := b.indexOf(s.noteID)
	if i < 0 {
		return false, fmt.Errorf("save note %d: %w", s.noteID, ErrNoteNotFound)
	}
	b.notes[i] = b.notes[i].withFields(s.draft)
	b.logger.Debug("note saved", "id", s.noteID)
	return true, nil
}

// DiscardEdit ends the session without committing the draft.
func (b *Board) DiscardEdit() {
	b.session = Session{}
}

// Session returns a snapshot of the edit session.
func (b *Board) Session() Session {
	return b.session
}
