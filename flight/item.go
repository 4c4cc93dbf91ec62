package flight

import "fmt"

// Status is where an item is in its life.
type Status int

const (
	Autonomous Status = iota // following its flight path
	Eaten                    // captured by the folder; terminal

	// Caught and Released are reserved. Nothing transitions into them yet.
	Caught
	Released
)

var statusNames = map[Status]string{
	Autonomous: "autonomous",
	Eaten:      "eaten",
	Caught:     "caught",
	Released:   "released",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown item status %q", name)
}

// Item is a file icon on its way to the folder.
type Item struct {
	ID     string
	X, Y   float64
	Status Status
	Path   FlightPath
}

func (it *Item) Pos() Point {
	return Point{X: it.X, Y: it.Y}
}

// Progress is the item's fraction along its flight path, derived from x.
func (it *Item) Progress() float64 {
	return it.Path.ProgressAt(it.X)
}
