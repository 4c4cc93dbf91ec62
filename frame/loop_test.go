package frame

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickRunsTasksInOrder(t *testing.T) {
	loop := NewLoop()
	var got []string
	loop.Schedule("a", func() { got = append(got, "a") })
	loop.Schedule("b", func() { got = append(got, "b") })

	loop.Tick()
	loop.Tick()

	assert.Equal(t, []string{"a", "b", "a", "b"}, got)
	assert.Equal(t, uint64(2), loop.Frames())
}

func TestCancelStopsTask(t *testing.T) {
	loop := NewLoop()
	runs := 0
	h := loop.Schedule("count", func() { runs++ })

	loop.Tick()
	h.Cancel()
	h.Cancel()
	loop.Tick()

	assert.Equal(t, 1, runs)
	assert.True(t, h.Cancelled())
	assert.Equal(t, 0, loop.Len())
}

func TestCancelDuringTick(t *testing.T) {
	loop := NewLoop()
	var later *Handle
	laterRuns := 0

	loop.Schedule("first", func() { later.Cancel() })
	later = loop.Schedule("later", func() { laterRuns++ })

	loop.Tick()

	assert.Equal(t, 0, laterRuns, "task cancelled earlier in the frame is skipped")
	assert.Equal(t, 1, loop.Len())
}

func TestSelfCancel(t *testing.T) {
	loop := NewLoop()
	runs := 0
	var h *Handle
	h = loop.Schedule("once", func() {
		runs++
		h.Cancel()
	})

	loop.Tick()
	loop.Tick()

	assert.Equal(t, 1, runs)
}

func TestScheduleSameNameReplaces(t *testing.T) {
	loop := NewLoop()
	var got []int
	old := loop.Schedule("flight", func() { got = append(got, 1) })
	loop.Schedule("flight", func() { got = append(got, 2) })

	loop.Tick()

	assert.True(t, old.Cancelled())
	assert.Equal(t, []int{2}, got)
	assert.Equal(t, 1, loop.Len())
}

func TestScheduledDuringTickRunsNextFrame(t *testing.T) {
	loop := NewLoop()
	runs := 0
	loop.Schedule("spawner", func() {
		loop.Schedule("child", func() { runs++ })
	})

	loop.Tick()
	assert.Equal(t, 0, runs)

	loop.Tick()
	assert.Equal(t, 1, runs)
}

func TestRescheduleKeepsSlot(t *testing.T) {
	loop := NewLoop()
	var got []string
	loop.Schedule("events", func() { got = append(got, "events") })
	old := loop.Schedule("flight", func() { got = append(got, "flight-1") })
	loop.Schedule("draw", func() { got = append(got, "draw") })

	h := loop.Schedule("flight", func() { got = append(got, "flight-2") })
	loop.Tick()

	assert.True(t, old.Cancelled())
	assert.False(t, h.Cancelled())
	assert.Equal(t, "flight", h.Name())
	assert.Equal(t, []string{"events", "flight", "draw"}, loop.Names())
	assert.Equal(t, []string{"events", "flight-2", "draw"}, got)
}

func TestRescheduledEveryFrameKeepsRunning(t *testing.T) {
	loop := NewLoop()
	runs := 0
	loop.Schedule("spawner", func() {
		loop.Schedule("child", func() { runs++ })
	})

	for i := 0; i < 4; i++ {
		loop.Tick()
	}

	assert.Equal(t, 3, runs)
	assert.Equal(t, 2, loop.Len())
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Cancel)
	assert.True(t, h.Cancelled())
}

func TestRunStopsWithContext(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	loop.Schedule("stop", func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, time.Millisecond) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.GreaterOrEqual(t, ticks, 3)
}
