package note

import (
	"fmt"
	"io"
	"log/slog"
)

// Board owns the note collection, the favorites set and the edit session.
//
// Board is not safe for concurrent use. It is driven from a single UI event
// loop, one operation per user action.
type Board struct {
	notes     []Note
	favorites map[int]struct{}
	session   Session

	// highWater is the largest id ever handed out, so ids are never reused
	// after deletions.
	highWater int

	logger *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for debug telemetry.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBoard creates an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		favorites: make(map[int]struct{}),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Seed appends notes that already carry ids, e.g. sample notes. The whole
// batch is rejected if any id is non-positive or already present.
func (b *Board) Seed(notes []Note) error {
	seen := make(map[int]struct{}, len(b.notes)+len(notes))
	for _, n := range b.notes {
		seen[n.ID] = struct{}{}
	}
	for _, n := range notes {
		if n.ID <= 0 {
			return fmt.Errorf("seed note %q: id %d must be positive", n.Title, n.ID)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("seed note %d: %w", n.ID, ErrDuplicateID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, n := range notes {
		b.notes = append(b.notes, n)
		if n.ID > b.highWater {
			b.highWater = n.ID
		}
	}
	return nil
}

// Create appends a new note built from f and returns it. The id is one past
// the largest id the board has ever seen.
func (b *Board) Create(f Fields) (Note, error) {
	id := b.nextID()
	if b.indexOf(id) >= 0 {
		return Note{}, fmt.Errorf("create note %d: %w", id, ErrDuplicateID)
	}
	if !f.Label.Valid() {
		f.Label = LabelOther
	}
	n := Note{ID: id}.withFields(f)
	b.notes = append(b.notes, n)
	b.highWater = id
	b.logger.Debug("note created", "id", id, "label", n.Label)
	return n, nil
}

func (b *Board) nextID() int {
	hi := b.highWater
	for _, n := range b.notes {
		if n.ID > hi {
			hi = n.ID
		}
	}
	return hi + 1
}

// Update replaces the fields of the note with the given id. It returns false
// and changes nothing if the id is absent.
func (b *Board) Update(id int, f Fields) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.notes[i] = b.notes[i].withFields(f)
	return true
}

// Delete removes the note with the given id together with its favorite
// entry. An edit session on that note is ended. It returns false if the id
// is absent.
func (b *Board) Delete(id int) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.notes = append(b.notes[:i], b.notes[i+1:]...)
	if _, ok := b.favorites[id]; ok {
		delete(b.favorites, id)
		b.logFavorites()
	}
	if b.session.Editing(id) {
		b.session = Session{}
	}
	b.logger.Debug("note deleted", "id", id)
	return true
}

// Notes returns a copy of the collection in insertion order.
func (b *Board) Notes() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// Get returns the note with the given id.
func (b *Board) Get(id int) (Note, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return b.notes[i], true
}

// Len returns the number of notes.
func (b *Board) Len() int { return len(b.notes) }

func (b *Board) indexOf(id int) int {
	for i, n := range b.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
