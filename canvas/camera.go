package canvas

import "file-flight/flight"

// Camera places the container on screen: the container origin sits at
// (Left, Top) and one container unit is Zoom pixels.
type Camera struct {
	Left, Top float64
	Zoom      float64
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.Zoom + c.Left, wy*c.Zoom + c.Top
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.Left) / c.Zoom, (sy - c.Top) / c.Zoom
}

// Bounds is the container box in screen space, as the animator expects it.
func (c *Camera) Bounds() flight.Bounds {
	return flight.Bounds{Left: c.Left, Top: c.Top, ScaleX: c.Zoom, ScaleY: c.Zoom}
}
