package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State is one frame of left-button pointer input in screen coordinates.
type State struct {
	X, Y     int
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool
}

// Poll reads the current pointer state from ebiten.
func Poll() State {
	mx, my := ebiten.CursorPosition()
	return State{
		X:        mx,
		Y:        my,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Host defines the callbacks the pointer needs from the game.
type Host interface {
	// ItemAt returns the id of the grabbable item under the screen
	// position, or "".
	ItemAt(sx, sy float64) string
	BeginDrag(id string) bool
}

type listener struct {
	move func(x, y float64)
	up   func()
}

// Pointer turns polled mouse state into press, move and release events. It
// implements flight.PointerSource: move and up callbacks only fire while
// someone is listening, which is exactly while an item is being dragged.
type Pointer struct {
	host Host

	// Exposed state for drawing
	HoverID string
	X, Y    int

	listeners map[int]*listener
	nextID    int
}

func NewPointer(h Host) *Pointer {
	return &Pointer{host: h, listeners: make(map[int]*listener)}
}

func (p *Pointer) Listen(move func(x, y float64), up func()) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = &listener{move: move, up: up}
	return func() { delete(p.listeners, id) }
}

// Listening reports whether a drag is attached.
func (p *Pointer) Listening() bool {
	return len(p.listeners) > 0
}

func (p *Pointer) Update() {
	p.Dispatch(Poll())
}

// Dispatch processes one frame of input.
func (p *Pointer) Dispatch(s State) {
	moved := s.X != p.X || s.Y != p.Y
	p.X, p.Y = s.X, s.Y
	p.HoverID = p.host.ItemAt(float64(s.X), float64(s.Y))

	if s.Pressed && p.HoverID != "" && !p.Listening() {
		p.host.BeginDrag(p.HoverID)
		return
	}

	if moved {
		for _, l := range p.snapshot() {
			if l.move != nil {
				l.move(float64(s.X), float64(s.Y))
			}
		}
	}

	// A release can be missed when the window loses focus mid-drag, so a
	// button that is no longer held also ends the drag.
	if s.Released || !s.Held {
		for _, l := range p.snapshot() {
			if l.up != nil {
				l.up()
			}
		}
	}
}

// snapshot copies the listeners in registration order so callbacks can
// detach themselves while being dispatched.
func (p *Pointer) snapshot() []*listener {
	if len(p.listeners) == 0 {
		return nil
	}
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.listeners[id])
	}
	return out
}
