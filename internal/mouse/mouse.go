// Package mouse maps terminal mouse events to named screen regions.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	doubleClickThreshold = 400 * time.Millisecond
	scrollDelta          = 3
)

// Rect is a screen rectangle in cells. The right and bottom edges are
// exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the clickable regions of one frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Later regions sit on top of earlier ones.
func (hm *HitMap) Add(id string, r Rect, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from coordinates.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.Add(id, Rect{X: x, Y: y, W: w, H: h}, data)
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			r := hm.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns a copy of the registered regions.
func (hm *HitMap) Regions() []Region {
	out := make([]Region, len(hm.regions))
	copy(out, hm.regions)
	return out
}

// ClickResult is the outcome of a click.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler tracks click timing on top of a hit map.
type Handler struct {
	HitMap *HitMap

	lastClickTime   time.Time
	lastClickRegion string

	now func() time.Time
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{
		HitMap: NewHitMap(),
		now:    time.Now,
	}
}

// HandleClick resolves a click at (x, y). A second click on the same region
// within the threshold is a double click; the click after that starts over.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	if region == nil {
		h.lastClickRegion = ""
		return ClickResult{}
	}

	now := h.now()
	double := region.ID == h.lastClickRegion && now.Sub(h.lastClickTime) < doubleClickThreshold
	if double {
		h.lastClickRegion = ""
		h.lastClickTime = time.Time{}
	} else {
		h.lastClickRegion = region.ID
		h.lastClickTime = now
	}
	return ClickResult{Region: region, IsDoubleClick: double}
}

// Clear drops all regions and click state.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.lastClickRegion = ""
	h.lastClickTime = time.Time{}
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionHover
)

// MouseAction is a mouse event resolved against the hit map.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Delta  int // rows for scroll actions, negative is up
}

// HandleMouse converts a Bubble Tea mouse message into an action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			if res.Region == nil {
				return action
			}
			action.Region = res.Region
			action.Type = ActionClick
			if res.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			action.Delta = -scrollDelta
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			action.Delta = scrollDelta
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}
	return action
}
