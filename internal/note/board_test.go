package note

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T, notes ...Note) *Board {
	t.Helper()
	b := NewBoard()
	require.NoError(t, b.Seed(notes))
	return b
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	b := NewBoard()
	seen := make(map[int]bool)
	for i := 0; i < 25; i++ {
		n, err := b.Create(Fields{Title: "t", Content: "c", Label: LabelWork})
		require.NoError(t, err)
		assert.False(t, seen[n.ID], "id %d reused", n.ID)
		seen[n.ID] = true
	}
	assert.Equal(t, 25, b.Len())
	assert.Equal(t, 1, b.Notes()[0].ID)
}

func TestCreate_MaxBasedAfterDelete(t *testing.T) {
	b := newSeeded(t, Note{ID: 1, Title: "A", Label: LabelOther})

	second, err := b.Create(Fields{Title: "B", Label: LabelOther})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	require.True(t, b.Delete(1))

	third, err := b.Create(Fields{Title: "C", Label: LabelOther})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID, "length-based assignment would have produced 2")
}

func TestCreate_NeverReusesDeletedMax(t *testing.T) {
	b := NewBoard()
	_, _ = b.Create(Fields{Title: "a"})
	last, _ := b.Create(Fields{Title: "b"})
	require.True(t, b.Delete(last.ID))

	next, err := b.Create(Fields{Title: "c"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, last.ID)
}

func TestCreate_AppendsInOrderAndDefaultsLabel(t *testing.T) {
	b := newSeeded(t, Samples()...)
	n, err := b.Create(Fields{Title: "new", Content: "body"})
	require.NoError(t, err)

	notes := b.Notes()
	assert.Equal(t, n, notes[len(notes)-1])
	assert.Equal(t, LabelOther, n.Label)
}

func TestSeed_RejectsDuplicates(t *testing.T) {
	b := NewBoard()
	err := b.Seed([]Note{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Zero(t, b.Len(), "rejected batch must not be partially applied")

	require.NoError(t, b.Seed([]Note{{ID: 1, Title: "a"}}))
	assert.ErrorIs(t, b.Seed([]Note{{ID: 1, Title: "again"}}), ErrDuplicateID)
	assert.Error(t, b.Seed([]Note{{ID: 0, Title: "zero"}}))
}

func TestUpdate(t *testing.T) {
	b := newSeeded(t, Note{ID: 1, Title: "A", Content: "a", Label: LabelWork})

	assert.True(t, b.Update(1, Fields{Title: "A2", Content: "a2", Label: LabelStudy}))
	got, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, Note{ID: 1, Title: "A2", Content: "a2", Label: LabelStudy}, got)

	before := b.Notes()
	assert.False(t, b.Update(99, Fields{Title: "x"}))
	assert.Equal(t, before, b.Notes())
}

func TestDelete_Absent(t *testing.T) {
	b := newSeeded(t, Samples()...)
	before := b.Notes()
	assert.False(t, b.Delete(42))
	assert.Equal(t, before, b.Notes())
}

func TestDelete_PreservesOrder(t *testing.T) {
	b := newSeeded(t, Samples()...)
	require.True(t, b.Delete(2))

	var ids []int
	for _, n := range b.Notes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}

func TestNotes_ReturnsCopy(t *testing.T) {
	b := newSeeded(t, Samples()...)
	notes := b.Notes()
	notes[0].Title = "mutated"

	got, _ := b.Get(notes[0].ID)
	assert.NotEqual(t, "mutated", got.Title)
}

func TestFavorites_LoggedOnChange(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := NewBoard(WithLogger(logger))
	require.NoError(t, b.Seed(Samples()))

	b.ToggleFavorite(3)
	b.ToggleFavorite(1)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "favorites updated"))
	assert.Contains(t, out, "ids=\"[1 3]\"")
}
