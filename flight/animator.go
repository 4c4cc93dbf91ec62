// Package flight animates files flying from a planet into a folder. An
// Animator owns the items, moves one of them along its flight path each
// frame, marks items eaten when they come close enough to the folder, and
// lets the user drag an item around in between.
package flight

import (
	"errors"
	"fmt"

	"file-flight/frame"
)

// TravelSpeed is how far along the planet-folder span an autonomous item
// moves per frame, in container units.
const TravelSpeed = 2.0

var (
	// ErrNoGrab is the panic value for a pointer move that arrives while
	// no item is grabbed. Pointer listeners only exist during a drag, so
	// this is always a wiring bug.
	ErrNoGrab = errors.New("flight: pointer move without a grabbed item")

	ErrInvalidWidth = errors.New("flight: container width must be positive")
)

// Config describes an Animator. Width is required; everything else has a
// usable zero value.
type Config struct {
	Width float64
	// Speed overrides TravelSpeed when positive.
	Speed float64
	// Bounds is the container's client-space box, captured once.
	Bounds  Bounds
	Pointer PointerSource
	// Shaper picks path control points. Nil means a RandomShaper seeded
	// with Seed.
	Shaper Shaper
	Seed   uint64

	// OnEaten is called once for every item that gets captured.
	OnEaten func(*Item)
	// OnShaperError is called when Shaper fails; the path then falls back
	// to the random shaper.
	OnShaperError func(error)
}

type Animator struct {
	layout  Layout
	speed   float64
	bounds  Bounds
	pointer PointerSource

	shaper   Shaper
	fallback Shaper
	spawned  int

	onEaten       func(*Item)
	onShaperError func(error)

	items []*Item
	byID  map[string]*Item

	grabbed    *Item
	stopListen func()

	frame *frame.Handle
}

// New builds an Animator with one seed item sitting on the planet.
func New(cfg Config) (*Animator, error) {
	if !finite(cfg.Width) || cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWidth, cfg.Width)
	}
	a := &Animator{
		layout:        NewLayout(cfg.Width),
		speed:         TravelSpeed,
		bounds:        cfg.Bounds,
		pointer:       cfg.Pointer,
		fallback:      NewRandomShaper(cfg.Seed),
		onEaten:       cfg.OnEaten,
		onShaperError: cfg.OnShaperError,
		byID:          make(map[string]*Item),
	}
	a.SetSpeed(cfg.Speed)
	a.shaper = cfg.Shaper
	if a.shaper == nil {
		a.shaper = a.fallback
	}
	a.Spawn()
	return a, nil
}

func (a *Animator) Layout() Layout {
	return a.layout
}

func (a *Animator) Bounds() Bounds {
	return a.bounds
}

func (a *Animator) Speed() float64 {
	return a.speed
}

// SetSpeed changes the per-frame travel speed. Non-positive and non-finite
// values restore TravelSpeed.
func (a *Animator) SetSpeed(speed float64) {
	if !finite(speed) || speed <= 0 {
		speed = TravelSpeed
	}
	a.speed = speed
}

// Spawn launches a new item from the planet on a freshly shaped path.
func (a *Animator) Spawn() *Item {
	control, err := a.shaper.Control(a.layout, a.spawned)
	if err != nil {
		if a.onShaperError != nil {
			a.onShaperError(err)
		}
		control, _ = a.fallback.Control(a.layout, a.spawned)
	}
	a.spawned++

	path := NewFlightPath(a.layout, control)
	it := &Item{
		ID:     NewID(),
		X:      path.Start.X,
		Y:      path.Start.Y,
		Status: Autonomous,
		Path:   path,
	}
	a.items = append(a.items, it)
	a.byID[it.ID] = it
	return it
}

// Restore replaces every item, ending any drag in progress.
func (a *Animator) Restore(items []Item) error {
	byID := make(map[string]*Item, len(items))
	list := make([]*Item, 0, len(items))
	for i := range items {
		it := items[i]
		if it.ID == "" {
			return fmt.Errorf("restore item %d: empty id", i)
		}
		if _, dup := byID[it.ID]; dup {
			return fmt.Errorf("restore item %d: duplicate id %s", i, it.ID)
		}
		if _, ok := statusNames[it.Status]; !ok {
			return fmt.Errorf("restore item %s: invalid status %d", it.ID, int(it.Status))
		}
		byID[it.ID] = &it
		list = append(list, &it)
	}

	a.EndDrag()
	a.items = list
	a.byID = byID
	a.spawned = len(list)
	return nil
}

// Items returns the items in creation order. The slice is a copy; the items
// are not.
func (a *Animator) Items() []*Item {
	out := make([]*Item, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Animator) Item(id string) (*Item, bool) {
	it, ok := a.byID[id]
	return it, ok
}

// Grabbed returns the item being dragged, or nil.
func (a *Animator) Grabbed() *Item {
	return a.grabbed
}

// ItemAt returns the most recently created uneaten item within radius of p.
func (a *Animator) ItemAt(p Point, radius float64) *Item {
	for i := len(a.items) - 1; i >= 0; i-- {
		it := a.items[i]
		if it.Status == Eaten {
			continue
		}
		if it.Pos().Dist(p) <= radius {
			return it
		}
	}
	return nil
}

// Counts reports how many items are autonomous and how many were eaten.
func (a *Animator) Counts() (autonomous, eaten int) {
	for _, it := range a.items {
		switch it.Status {
		case Autonomous:
			autonomous++
		case Eaten:
			eaten++
		}
	}
	return autonomous, eaten
}

// AdvanceFrame moves the first autonomous item that is not being dragged one
// step along its flight path. Progress is re-derived from the item's x so an
// item dropped somewhere else picks up from there.
func (a *Animator) AdvanceFrame() {
	var it *Item
	for _, candidate := range a.items {
		if candidate.Status == Autonomous && candidate != a.grabbed {
			it = candidate
			break
		}
	}
	if it == nil {
		return
	}

	t := clamp01(it.Path.ProgressAt(it.X) + a.speed/a.layout.Span())
	p := it.Path.At(t)
	it.X, it.Y = p.X, p.Y
}

// CheckCaptures marks every uneaten item strictly inside the capture radius
// as eaten. A captured item that is being dragged is dropped.
func (a *Animator) CheckCaptures() {
	target, radius := a.layout.Target(), a.layout.CaptureRadius()
	for _, it := range a.items {
		if it.Status == Eaten {
			continue
		}
		if it.Pos().Dist(target) < radius {
			it.Status = Eaten
			if it == a.grabbed {
				a.EndDrag()
			}
			if a.onEaten != nil {
				a.onEaten(it)
			}
		}
	}
}

// Frame is the per-frame task: advance, then capture.
func (a *Animator) Frame() {
	a.AdvanceFrame()
	a.CheckCaptures()
}

// Start schedules Frame on loop as the "flight" task. A live "flight" task,
// this animator's or a previous one's, is replaced in its slot.
func (a *Animator) Start(loop *frame.Loop) {
	old := a.frame
	a.frame = loop.Schedule("flight", a.Frame)
	old.Cancel()
}

// Running reports whether the frame task is scheduled.
func (a *Animator) Running() bool {
	return a.frame != nil && !a.frame.Cancelled()
}

// BeginDrag grabs the item with the given id and starts listening for
// pointer moves and release. Unknown and eaten items are ignored.
func (a *Animator) BeginDrag(id string) bool {
	it, ok := a.byID[id]
	if !ok || it.Status == Eaten {
		return false
	}
	if a.grabbed != nil {
		a.EndDrag()
	}
	a.grabbed = it
	if a.pointer != nil {
		a.stopListen = a.pointer.Listen(a.OnPointerMove, a.EndDrag)
	}
	return true
}

// OnPointerMove moves the grabbed item under the pointer. It panics with
// ErrNoGrab if nothing is grabbed.
func (a *Animator) OnPointerMove(clientX, clientY float64) {
	if a.grabbed == nil {
		panic(ErrNoGrab)
	}
	p := a.bounds.ToContainer(clientX, clientY)
	a.grabbed.X, a.grabbed.Y = p.X, p.Y
}

// EndDrag releases the grabbed item and detaches the pointer listeners.
func (a *Animator) EndDrag() {
	a.grabbed = nil
	if a.stopListen != nil {
		stop := a.stopListen
		a.stopListen = nil
		stop()
	}
}

// Close ends any drag and cancels the frame task.
func (a *Animator) Close() {
	a.EndDrag()
	if a.frame != nil {
		a.frame.Cancel()
		a.frame = nil
	}
}
