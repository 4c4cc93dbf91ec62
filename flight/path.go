package flight

import (
	"math"
	"math/rand/v2"
)

// FlightPath is the quadratic bezier an item follows from the planet to the
// folder. It never changes once generated.
type FlightPath struct {
	Start, Control, End Point
}

// NewFlightPath builds a path from the planet to the folder through control.
// The control x is clamped between the endpoints so x grows monotonically
// with progress.
func NewFlightPath(l Layout, control Point) FlightPath {
	start, end := l.Planet(), l.Target()
	control.X = math.Max(start.X, math.Min(end.X, control.X))
	return FlightPath{Start: start, Control: control, End: end}
}

// At evaluates the curve at fraction t in [0,1].
func (p FlightPath) At(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p.Start.X + 2*u*t*p.Control.X + t*t*p.End.X,
		Y: u*u*p.Start.Y + 2*u*t*p.Control.Y + t*t*p.End.Y,
	}
}

// ProgressAt returns the fraction at which the curve reaches horizontal
// position x, clamped to [0,1].
func (p FlightPath) ProgressAt(x float64) float64 {
	// x(t) = a*t^2 + b*t + start
	a := p.Start.X - 2*p.Control.X + p.End.X
	b := 2 * (p.Control.X - p.Start.X)
	c := p.Start.X - x

	if math.Abs(a) < 1e-9 {
		if b == 0 {
			return 0
		}
		return clamp01(-c / b)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		// x is past the extremum; the vertex is the closest we get
		return clamp01(-b / (2 * a))
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		return t1
	}
	return clamp01((-b - sq) / (2 * a))
}

// Shaper picks the control point for the index-th path generated in a
// layout.
type Shaper interface {
	Control(l Layout, index int) (Point, error)
}

// RandomShaper arcs paths above the straight planet-folder line by a random
// lift of up to half the container height, which keeps the apex inside the
// container.
type RandomShaper struct {
	Rand *rand.Rand
}

func NewRandomShaper(seed uint64) RandomShaper {
	return RandomShaper{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s RandomShaper) Control(l Layout, _ int) (Point, error) {
	lift := s.Rand.Float64() * l.Height / 2
	return Point{X: l.Width / 2, Y: -lift}, nil
}
