// Package frame runs per-frame tasks. A Loop is driven either by the host's
// own refresh callback (Tick) or by a ticker (Run). Every scheduled task gets
// a Handle so teardown can stop it.
//
// A Loop is not safe for concurrent use; all calls happen on the goroutine
// that drives it.
package frame

import (
	"context"
	"time"
)

// Handle identifies a scheduled task. Cancel is idempotent and safe to call
// from inside the task itself.
type Handle struct {
	name      string
	loop      *Loop
	cancelled bool
}

func (h *Handle) Name() string {
	return h.name
}

func (h *Handle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	h.loop.remove(h)
}

func (h *Handle) Cancelled() bool {
	return h == nil || h.cancelled
}

type task struct {
	handle *Handle
	fn     func()
}

// Loop holds the tasks run on every frame, in the order they were scheduled.
type Loop struct {
	tasks  []task
	frames uint64
}

func NewLoop() *Loop {
	return &Loop{}
}

// Schedule runs fn once per frame until the returned handle is cancelled.
// Scheduling a name that is already live replaces that task in its slot and
// cancels the previous handle.
func (l *Loop) Schedule(name string, fn func()) *Handle {
	h := &Handle{name: name, loop: l}
	for i, t := range l.tasks {
		if t.handle.name == name {
			t.handle.cancelled = true
			l.tasks[i] = task{handle: h, fn: fn}
			return h
		}
	}
	l.tasks = append(l.tasks, task{handle: h, fn: fn})
	return h
}

func (l *Loop) remove(h *Handle) {
	for i, t := range l.tasks {
		if t.handle == h {
			l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
			return
		}
	}
}

// Tick runs one frame. Tasks cancelled earlier in the same frame are skipped;
// new names scheduled during the frame first run on the next one, while a
// replaced task runs its new function if its slot has not been reached yet.
func (l *Loop) Tick() {
	l.frames++
	snapshot := l.tasks
	for i := range snapshot {
		t := snapshot[i]
		if t.handle.cancelled {
			continue
		}
		t.fn()
	}
}

// Len reports the number of live tasks.
func (l *Loop) Len() int {
	return len(l.tasks)
}

// Names lists the live tasks in the order they run.
func (l *Loop) Names() []string {
	names := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		names[i] = t.handle.Name()
	}
	return names
}

// Frames reports how many times Tick has run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run ticks every interval until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}
