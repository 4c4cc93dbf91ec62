package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"file-flight/flight"
)

func TestScreenToWorldRoundTrip(t *testing.T) {
	cam := Camera{Left: 12, Top: 30, Zoom: 1.5}

	wx, wy := cam.ScreenToWorld(cam.WorldToScreen(40, 25))
	assert.InDelta(t, 40, wx, 1e-9)
	assert.InDelta(t, 25, wy, 1e-9)
}

func TestBoundsMatchCamera(t *testing.T) {
	cam := Camera{Left: 12, Top: 30, Zoom: 1.5}
	b := cam.Bounds()

	wx, wy := cam.ScreenToWorld(100, 90)
	assert.Equal(t, flight.Point{X: wx, Y: wy}, b.ToContainer(100, 90))
}

func TestStarfieldDeterministic(t *testing.T) {
	l := flight.NewLayout(300)
	a := Starfield(l, 20, 9)
	b := Starfield(l, 20, 9)

	assert.Equal(t, a, b)
	for _, s := range a {
		assert.True(t, s.X >= 0 && s.X < l.Width)
		assert.True(t, s.Y >= 0 && s.Y < l.Height)
		assert.GreaterOrEqual(t, s.Alpha, uint8(80))
	}
}
