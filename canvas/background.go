package canvas

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"file-flight/flight"
)

// Star is a background dot in container coordinates.
type Star struct {
	X, Y   float64
	Radius float64
	Alpha  uint8
}

// Starfield scatters n stars over the container. The same seed always gives
// the same sky.
func Starfield(l flight.Layout, n int, seed uint64) []Star {
	r := rand.New(rand.NewPCG(seed, seed+1))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      r.Float64() * l.Width,
			Y:      r.Float64() * l.Height,
			Radius: 0.5 + r.Float64()*1.2,
			Alpha:  uint8(80 + r.IntN(160)),
		}
	}
	return stars
}

// DrawBackground fills the container, draws the stars and outlines the
// container edge.
func DrawBackground(cam *Camera, screen *ebiten.Image, l flight.Layout, stars []Star, fill, star, border color.RGBA) {
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(l.Width, l.Height)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), fill, false)

	for _, s := range stars {
		sx, sy := cam.WorldToScreen(s.X, s.Y)
		c := star
		c.A = s.Alpha
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(s.Radius*cam.Zoom), c, true)
	}

	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, border, false)
}
