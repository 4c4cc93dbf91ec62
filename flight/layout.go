package flight

// Layout is the fixed geometry of the widget. Everything is derived from the
// container width: the container is three times as wide as it is tall, the
// planet sits in the left sixth and the folder in the right sixth.
type Layout struct {
	Width, Height float64
}

func NewLayout(width float64) Layout {
	return Layout{Width: width, Height: width / 3}
}

// Planet is where every flight path starts.
func (l Layout) Planet() Point {
	return Point{X: l.Width / 6, Y: l.Height / 2}
}

// Target is the folder mouth. Flight paths end here and captures are
// measured against it.
func (l Layout) Target() Point {
	return Point{X: l.Width * 5 / 6, Y: l.Height / 2}
}

func (l Layout) CaptureRadius() float64 {
	return l.Width / 4
}

// Span is the horizontal distance between planet and folder.
func (l Layout) Span() float64 {
	return l.Width * 2 / 3
}
