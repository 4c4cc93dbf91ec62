package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"file-flight/flight"
)

// PathScript is a flight.Shaper backed by a starlark script. The script sees
// width, height and index (the number of paths generated before this one)
// and must set control_x and control_y.
//
//	control_x = width / 2
//	control_y = -height / 3 if index % 2 == 0 else height / 6
//
// Results are cached per input set, so a script should be deterministic.
type PathScript struct {
	Name   string
	Source string
	cache  map[string]flight.Point
}

func NewPathScript(name, source string) *PathScript {
	return &PathScript{Name: name, Source: source, cache: make(map[string]flight.Point)}
}

// LoadPathScript reads a script from disk.
func LoadPathScript(path string) (*PathScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("path script: %w", err)
	}
	return NewPathScript(filepath.Base(path), string(data)), nil
}

func (s *PathScript) Control(l flight.Layout, index int) (flight.Point, error) {
	inputs := map[string]interface{}{
		"width":  l.Width,
		"height": l.Height,
		"index":  index,
	}
	key := ComputeInputHash(s.Name, inputs)
	if p, ok := s.cache[key]; ok {
		return p, nil
	}

	outputs, err := ExecuteStarlark(s.Name, s.Source, inputs)
	if err != nil {
		return flight.Point{}, fmt.Errorf("path script %s: %w", s.Name, err)
	}
	x, okX := toFloat(outputs["control_x"])
	y, okY := toFloat(outputs["control_y"])
	if !okX || !okY {
		return flight.Point{}, fmt.Errorf("path script %s: control_x and control_y must be set to numbers", s.Name)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return flight.Point{}, fmt.Errorf("path script %s: control point (%v, %v) is not finite", s.Name, x, y)
	}

	p := flight.Point{X: x, Y: y}
	s.cache[key] = p
	return p, nil
}

// Check runs the script once on a sample layout so that scripts which cannot
// run at all fail at load time instead of on every launch.
func (s *PathScript) Check() error {
	_, err := s.Control(flight.NewLayout(300), 0)
	return err
}

// Cached reports how many input sets have a cached result.
func (s *PathScript) Cached() int {
	return len(s.cache)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
