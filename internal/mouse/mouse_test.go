package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"inside", 15, 30, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 40, 30, false},
		{"bottom edge exclusive", 15, 60, false},
		{"just inside right", 39, 30, true},
		{"just inside bottom", 15, 59, true},
		{"left of rect", 9, 30, false},
		{"above rect", 15, 19, false},
		{"far outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%+v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRect_Contains_ZeroSize(t *testing.T) {
	if (Rect{X: 5, Y: 5, W: 0, H: 10}).Contains(5, 5) {
		t.Error("zero-width rect should not contain any point")
	}
	if (Rect{X: 5, Y: 5, W: 10, H: 0}).Contains(5, 5) {
		t.Error("zero-height rect should not contain any point")
	}
}

func TestHitMap_AddAndTest(t *testing.T) {
	hm := NewHitMap()
	hm.Add("a", Rect{X: 0, Y: 0, W: 10, H: 10}, "data-a")
	hm.Add("b", Rect{X: 20, Y: 20, W: 10, H: 10}, "data-b")

	r := hm.Test(5, 5)
	if r == nil || r.ID != "a" {
		t.Fatalf("expected region 'a', got %v", r)
	}
	if r.Data != "data-a" {
		t.Errorf("expected data 'data-a', got %v", r.Data)
	}

	r = hm.Test(25, 25)
	if r == nil || r.ID != "b" {
		t.Fatalf("expected region 'b', got %v", r)
	}
}

func TestHitMap_OverlappingRegions(t *testing.T) {
	hm := NewHitMap()
	hm.Add("bottom", Rect{X: 0, Y: 0, W: 20, H: 20}, nil)
	hm.Add("top", Rect{X: 5, Y: 5, W: 10, H: 10}, nil)

	if r := hm.Test(7, 7); r == nil || r.ID != "top" {
		t.Fatalf("overlapping point should hit 'top' (last added), got %v", r)
	}
	if r := hm.Test(2, 2); r == nil || r.ID != "bottom" {
		t.Fatalf("non-overlapping point should hit 'bottom', got %v", r)
	}
}

func TestHitMap_Stack(t *testing.T) {
	hm := NewHitMap()
	hm.Add("board", Rect{X: 0, Y: 0, W: 80, H: 24}, nil)
	hm.Add("card", Rect{X: 2, Y: 2, W: 20, H: 6}, nil)
	hm.Add("icon", Rect{X: 3, Y: 7, W: 3, H: 1}, nil)

	stack := hm.Stack(4, 7)
	want := []string{"icon", "card", "board"}
	if len(stack) != len(want) {
		t.Fatalf("got %d regions, want %d", len(stack), len(want))
	}
	for i, id := range want {
		if stack[i].ID != id {
			t.Errorf("stack[%d] = %q, want %q", i, stack[i].ID, id)
		}
	}

	if got := hm.Stack(50, 20); len(got) != 1 || got[0].ID != "board" {
		t.Errorf("expected only board, got %v", got)
	}
	if got := hm.Stack(200, 200); got != nil {
		t.Errorf("expected nil stack outside everything, got %v", got)
	}
}

func TestHitMap_LayersCoverLowerRegions(t *testing.T) {
	hm := NewHitMap()
	hm.Add("card", Rect{X: 0, Y: 0, W: 20, H: 10}, nil)
	hm.SetLayer(1)
	hm.Add("modal", Rect{X: 0, Y: 0, W: 80, H: 24}, nil)
	hm.Add("close", Rect{X: 5, Y: 5, W: 5, H: 1}, nil)
	hm.SetLayer(0)
	hm.Add("late-board", Rect{X: 0, Y: 0, W: 80, H: 24}, nil)

	stack := hm.Stack(6, 5)
	if len(stack) != 2 || stack[0].ID != "close" || stack[1].ID != "modal" {
		t.Fatalf("expected [close modal], got %v", stack)
	}
	if r := hm.Test(1, 1); r == nil || r.ID != "modal" {
		t.Fatalf("higher layer must win over later lower-layer region, got %v", r)
	}
}

func TestHitMap_Clear(t *testing.T) {
	hm := NewHitMap()
	hm.SetLayer(2)
	hm.Add("a", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)

	hm.Clear()

	if hm.Test(5, 5) != nil {
		t.Fatal("expected nil after clear")
	}
	hm.Add("b", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)
	if r := hm.Test(5, 5); r == nil || r.Layer != 0 {
		t.Fatalf("clear should reset the layer, got %v", r)
	}
}

func TestHitMap_AddRect(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("r", 10, 20, 30, 40, "rect-data")

	r := hm.Test(15, 30)
	if r == nil || r.ID != "r" {
		t.Fatalf("expected region 'r', got %v", r)
	}
	if r.Rect != (Rect{X: 10, Y: 20, W: 30, H: 40}) {
		t.Errorf("unexpected rect values: %+v", r.Rect)
	}
}

func TestHitMap_Regions(t *testing.T) {
	hm := NewHitMap()
	hm.Add("a", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)
	hm.Add("b", Rect{X: 20, Y: 20, W: 10, H: 10}, nil)

	regions := hm.Regions()
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}

	regions[0].ID = "mutated"
	if hm.Regions()[0].ID == "mutated" {
		t.Error("Regions() should return a copy, but mutation affected original")
	}
}

func TestHandleMouse_Click(t *testing.T) {
	h := NewHandler()
	h.HitMap.Add("btn", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)

	action := h.HandleMouse(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      5,
		Y:      5,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %d", action.Type)
	}
	if action.Region == nil || action.Region.ID != "btn" {
		t.Error("expected region 'btn'")
	}
}

func TestHandleMouse_ClickMissIsStillAClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.Add("btn", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)

	action := h.HandleMouse(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      50,
		Y:      50,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick for miss, got %d", action.Type)
	}
	if action.Region != nil {
		t.Error("expected nil region for miss")
	}
}

func TestHandleMouse_ReleaseIgnored(t *testing.T) {
	h := NewHandler()
	action := h.HandleMouse(tea.MouseMsg{
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone for release, got %d", action.Type)
	}
}

func TestHandleMouse_Scroll(t *testing.T) {
	h := NewHandler()
	h.HitMap.Add("content", Rect{X: 0, Y: 0, W: 80, H: 24}, nil)

	up := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, X: 5, Y: 5})
	if up.Type != ActionScrollUp || up.Delta != -3 {
		t.Errorf("expected ActionScrollUp with delta -3, got %d/%d", up.Type, up.Delta)
	}

	down := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, X: 5, Y: 5})
	if down.Type != ActionScrollDown || down.Delta != 3 {
		t.Errorf("expected ActionScrollDown with delta 3, got %d/%d", down.Type, down.Delta)
	}
}

func TestHandleMouse_Hover(t *testing.T) {
	h := NewHandler()
	h.HitMap.Add("btn", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)

	action := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, X: 5, Y: 5})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %d", action.Type)
	}
	if action.Region == nil || action.Region.ID != "btn" {
		t.Error("expected hover over region 'btn'")
	}

	action = h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, X: 50, Y: 50})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover even for miss, got %d", action.Type)
	}
	if action.Region != nil {
		t.Error("expected nil region for hover miss")
	}
}

func TestHandler_Clear(t *testing.T) {
	h := NewHandler()
	h.HitMap.Add("btn", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)

	h.Clear()

	if h.HitMap.Test(5, 5) != nil {
		t.Error("expected no hit after clear")
	}
}
