package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"file-flight/flight"
)

// pathPoints samples the part of a flight path between fraction from and the
// end into segments+1 points.
func pathPoints(path flight.FlightPath, from float64, segments int) []flight.Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]flight.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := from + (1-from)*float64(i)/float64(segments)
		pts = append(pts, path.At(t))
	}
	return pts
}

// nextFlyer is the item the animator will move on the next frame.
func (g *Game) nextFlyer() *flight.Item {
	grabbed := g.anim.Grabbed()
	for _, it := range g.anim.Items() {
		if it.Status == flight.Autonomous && it != grabbed {
			return it
		}
	}
	return nil
}

// drawFlightPath previews the rest of the current flyer's trip as a dashed
// curve.
func (g *Game) drawFlightPath(screen *ebiten.Image) {
	it := g.nextFlyer()
	if it == nil {
		return
	}

	thickness := float32(1.5 * g.camera.Zoom)
	if thickness < 1 {
		thickness = 1
	}

	pts := pathPoints(it.Path, it.Progress(), PathSegments)
	for i := 1; i < len(pts); i++ {
		if i%PathDashGap == 0 {
			continue
		}
		px, py := g.camera.WorldToScreen(pts[i-1].X, pts[i-1].Y)
		cx, cy := g.camera.WorldToScreen(pts[i].X, pts[i].Y)
		vector.StrokeLine(screen, float32(px), float32(py), float32(cx), float32(cy), thickness, ColorPath, true)
	}
}
