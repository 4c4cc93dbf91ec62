package main

import "testing"

type fakeHost struct {
	id      string
	cx, cy  int
	grabbed []string
}

func (h *fakeHost) itemAt(x, y int) string {
	if x == h.cx && y == h.cy {
		return h.id
	}
	return ""
}

func (h *fakeHost) beginDrag(id string) bool {
	h.grabbed = append(h.grabbed, id)
	return true
}

func TestTermPointerDrag(t *testing.T) {
	h := &fakeHost{id: "abc", cx: 5, cy: 3}
	p := newTermPointer(h)

	var moves [][2]float64
	ups := 0
	p.mouse(5, 3, true)
	if len(h.grabbed) != 1 || h.grabbed[0] != "abc" {
		t.Fatalf("Expected grab of abc, got %v", h.grabbed)
	}
	stop := p.Listen(func(x, y float64) { moves = append(moves, [2]float64{x, y}) }, func() { ups++ })

	p.mouse(7, 4, true)
	p.mouse(7, 4, true)
	if len(moves) != 1 || moves[0] != [2]float64{7.5, 4.5} {
		t.Errorf("Expected one move to the cell center (7.5, 4.5), got %v", moves)
	}

	p.mouse(7, 4, false)
	if ups != 1 {
		t.Errorf("Expected one release, got %d", ups)
	}
	stop()
	if len(p.listeners) != 0 {
		t.Error("Expected listeners detached")
	}
}

func TestTermPointerPressOnEmptyCell(t *testing.T) {
	h := &fakeHost{id: "abc", cx: 5, cy: 3}
	p := newTermPointer(h)

	p.mouse(1, 1, true)
	p.mouse(5, 3, true)
	if len(h.grabbed) != 0 {
		t.Errorf("Expected no grab when the press started elsewhere, got %v", h.grabbed)
	}
	if p.hoverID != "abc" {
		t.Errorf("Expected hover on abc, got %q", p.hoverID)
	}
}
