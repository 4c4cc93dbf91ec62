package main

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type host interface {
	itemAt(x, y int) string
	beginDrag(id string) bool
}

type listener struct {
	move func(x, y float64)
	up   func()
}

// termPointer turns tcell mouse events into grab, move and release. It
// implements flight.PointerSource.
type termPointer struct {
	host    host
	held    bool
	x, y    int
	hoverID string

	listeners map[int]*listener
	nextID    int
}

func newTermPointer(h host) *termPointer {
	return &termPointer{host: h, listeners: make(map[int]*listener)}
}

func (p *termPointer) Listen(move func(x, y float64), up func()) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = &listener{move: move, up: up}
	return func() { delete(p.listeners, id) }
}

func (p *termPointer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p.mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
}

// mouse processes one mouse report: cell position and whether the left
// button is down.
func (p *termPointer) mouse(x, y int, down bool) {
	moved := x != p.x || y != p.y
	p.x, p.y = x, y
	p.hoverID = p.host.itemAt(x, y)

	switch {
	case down && !p.held:
		p.held = true
		if p.hoverID != "" && len(p.listeners) == 0 {
			p.host.beginDrag(p.hoverID)
		}
	case down && moved:
		cx, cy := cellCenter(x, y)
		for _, l := range p.snapshot() {
			if l.move != nil {
				l.move(cx, cy)
			}
		}
	case !down && p.held:
		p.held = false
		for _, l := range p.snapshot() {
			if l.up != nil {
				l.up()
			}
		}
	}
}

func (p *termPointer) snapshot() []*listener {
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
