package board

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/noteboard/internal/mouse"
)

// Region IDs reported by Regions.
const (
	RegionForm       = "form"
	regionCardPrefix = "card-"
)

// CardRegionID returns the hit region ID of the card showing note id.
func CardRegionID(id int) string {
	return regionCardPrefix + strconv.Itoa(id)
}

// Regions returns the clickable areas of the board relative to its top-left
// corner: the creation form and one region per visible card. Card regions
// are keyed by note id, so a double click only registers on a single card.
func (m *Model) Regions() []mouse.Region {
	regions := []mouse.Region{{
		ID:   RegionForm,
		Rect: mouse.Rect{W: formWidth(m.width), H: formHeight},
	}}

	notes := m.board.Notes()
	cols := max(m.columns, 1)
	cw := cardWidth(m.width, cols)
	first := m.scrollRow * cols
	for r := 0; r < visibleRows(m.height); r++ {
		for c := 0; c < cols; c++ {
			i := first + r*cols + c
			if i >= len(notes) {
				return regions
			}
			regions = append(regions, mouse.Region{
				ID:   CardRegionID(notes[i].ID),
				Rect: mouse.Rect{X: c * cw, Y: formHeight + r*cardHeight, W: cw, H: cardHeight},
				Data: i,
			})
		}
	}
	return regions
}

// CardAt returns the index of the card at (x, y), relative to the board's
// top-left corner.
func (m *Model) CardAt(x, y int) (int, bool) {
	gy := y - formHeight
	if x < 0 || gy < 0 {
		return 0, false
	}
	cols := max(m.columns, 1)
	col := x / cardWidth(m.width, cols)
	if col >= cols {
		return 0, false
	}
	idx := (m.scrollRow+gy/cardHeight)*cols + col
	if idx >= m.board.Len() {
		return 0, false
	}
	return idx, true
}

// Click handles a left click at (x, y). Clicking the form focuses it;
// clicking a card selects it and a double click opens its editor.
func (m *Model) Click(x, y int, double bool) tea.Cmd {
	if y >= 0 && y < formHeight && x < formWidth(m.width) {
		if m.focus == FocusForm {
			return nil
		}
		m.leaveEdit()
		return m.focusForm()
	}

	idx, ok := m.CardAt(x, y)
	if !ok {
		return nil
	}
	if m.focus == FocusEdit && idx == m.cursor {
		return nil
	}
	switch m.focus {
	case FocusForm:
		m.leaveForm()
	case FocusEdit:
		m.leaveEdit()
	}
	m.cursor = idx
	m.ensureCursorVisible()
	if double {
		return m.startEdit()
	}
	return nil
}

// Scroll moves the grid cursor by whole rows.
func (m *Model) Scroll(rows int) {
	if m.focus != FocusGrid || rows == 0 {
		return
	}
	cols := max(m.columns, 1)
	target := m.cursor + rows*cols
	target = min(max(target, 0), m.board.Len()-1)
	m.moveCursor(target - m.cursor)
}
