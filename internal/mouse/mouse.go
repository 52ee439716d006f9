// Package mouse maps terminal mouse input onto rendered regions.
//
// Views register regions while rendering; input handlers then ask which
// regions lie under the pointer. Regions are stacked in layers (a modal
// sits above the board, a tooltip above the modal) and, within a layer,
// later regions sit above earlier ones, so parents are registered before
// their children.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// scrollStep is the number of lines a single wheel notch scrolls.
const scrollStep = 3

// Rect is a screen rectangle in cells. The right and bottom edges are
// exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable area.
type Region struct {
	ID    string
	Rect  Rect
	Layer int
	Data  any
}

// HitMap collects the regions of one rendered frame.
type HitMap struct {
	regions []Region
	layer   int
}

// NewHitMap creates an empty HitMap.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// SetLayer sets the layer for regions added afterwards.
func (h *HitMap) SetLayer(layer int) { h.layer = layer }

// Add registers a region on the current layer.
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Layer: h.layer, Data: data})
}

// AddRect is Add with the rectangle given as coordinates.
func (h *HitMap) AddRect(id string, x, y, w, hgt int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: hgt}, data)
}

// Clear removes all regions and resets the layer.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
	h.layer = 0
}

// Regions returns a copy of the registered regions.
func (h *HitMap) Regions() []Region {
	out := make([]Region, len(h.regions))
	copy(out, h.regions)
	return out
}

// Test returns the topmost region containing the point, or nil.
func (h *HitMap) Test(x, y int) *Region {
	stack := h.Stack(x, y)
	if len(stack) == 0 {
		return nil
	}
	return &stack[0]
}

// Stack returns every region containing the point on the highest layer
// that has a hit, topmost first. Regions on lower layers are covered and
// not reported.
func (h *HitMap) Stack(x, y int) []Region {
	top := -1
	for _, r := range h.regions {
		if r.Layer > top && r.Rect.Contains(x, y) {
			top = r.Layer
		}
	}
	if top < 0 {
		return nil
	}

	var out []Region
	for i := len(h.regions) - 1; i >= 0; i-- {
		r := h.regions[i]
		if r.Layer == top && r.Rect.Contains(x, y) {
			out = append(out, r)
		}
	}
	return out
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionScrollUp
	ActionScrollDown
	ActionHover
)

// MouseAction is the classified result of a mouse message.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Delta  int // scroll lines, negative = up
}

// Handler classifies mouse messages against a HitMap.
type Handler struct {
	HitMap *HitMap
}

// NewHandler creates a Handler with an empty HitMap.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Clear removes all regions.
func (h *Handler) Clear() { h.HitMap.Clear() }

// HandleMouse classifies msg. Left presses on a region are clicks, wheel
// presses scroll, and any motion is a hover (Region nil when over nothing).
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			action.Delta = -scrollStep
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			action.Delta = scrollStep
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}

	return action
}
