package flight

// PointerSource delivers pointer events in client coordinates. Listen
// attaches both callbacks and returns a function that detaches them.
type PointerSource interface {
	Listen(move func(clientX, clientY float64), up func()) (stop func())
}

// Bounds places the container in client space: its top-left corner and the
// number of client units per container unit on each axis. Zero scales are
// treated as 1.
type Bounds struct {
	Left, Top      float64
	ScaleX, ScaleY float64
}

func (b Bounds) scale() (float64, float64) {
	sx, sy := b.ScaleX, b.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// ToContainer converts client coordinates to container coordinates.
func (b Bounds) ToContainer(clientX, clientY float64) Point {
	sx, sy := b.scale()
	return Point{X: (clientX - b.Left) / sx, Y: (clientY - b.Top) / sy}
}

// ToClient converts a container point to client coordinates.
func (b Bounds) ToClient(p Point) (float64, float64) {
	sx, sy := b.scale()
	return b.Left + p.X*sx, b.Top + p.Y*sy
}
