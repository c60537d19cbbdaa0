// Package note holds the in-memory state of a note board: the ordered note
// collection, the favorites set and the single edit session.
package note

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when a note would be stored under an id
	// that is already taken.
	ErrDuplicateID = errors.New("duplicate note id")
	// ErrNoteNotFound is returned when an operation targets a note that is
	// no longer in the collection.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidLabel is returned by ParseLabel for names outside the enum.
	ErrInvalidLabel = errors.New("invalid label")
)

// Label is the category tag attached to a note.
type Label string

const (
	LabelWork     Label = "work"
	LabelPersonal Label = "personal"
	LabelStudy    Label = "study"
	LabelOther    Label = "other"
)

var labels = []Label{LabelWork, LabelPersonal, LabelStudy, LabelOther}

// Labels returns every label in display order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// ParseLabel converts a label name (case-insensitive) into a Label.
func ParseLabel(s string) (Label, error) {
	name := Label(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range labels {
		if l == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
}

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	_, err := ParseLabel(string(l))
	return err == nil
}

// Next returns the label after l, wrapping around. Unknown labels map to the
// first label.
func (l Label) Next() Label {
	return labels[(l.index()+1)%len(labels)]
}

// Prev returns the label before l, wrapping around.
func (l Label) Prev() Label {
	i := l.index()
	if i < 0 {
		return labels[len(labels)-1]
	}
	return labels[(i+len(labels)-1)%len(labels)]
}

func (l Label) index() int {
	for i, v := range labels {
		if v == l {
			return i
		}
	}
	return -1
}

func (l Label) String() string { return string(l) }

// Note is a single user-authored note.
type Note struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Label   Label  `json:"label"`
}

// Fields is the editable part of a note. It is the creation draft and the
// payload for updates and edit sessions.
type Fields struct {
	Title   string
	Content string
	Label   Label
}

// Fields returns the editable fields of n.
func (n Note) Fields() Fields {
	return Fields{Title: n.Title, Content: n.Content, Label: n.Label}
}

// withFields returns n with its editable fields replaced.
func (n Note) withFields(f Fields) Note {
	n.Title = f.Title
	n.Content = f.Content
	n.Label = f.Label
	return n
}

// Blank reports whether title or content is empty after trimming. The
// creation form refuses blank drafts; the board itself accepts them.
func (f Fields) Blank() bool {
	return strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Content) == ""
}
