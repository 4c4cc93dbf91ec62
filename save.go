package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"file-flight/flight"
)

type PointState struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PathState struct {
	Start   PointState `yaml:"start"`
	Control PointState `yaml:"control"`
	End     PointState `yaml:"end"`
}

type ItemState struct {
	ID     string    `yaml:"id"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Status string    `yaml:"status"`
	Path   PathState `yaml:"path"`
}

type AppState struct {
	Width float64     `yaml:"width"`
	Speed float64     `yaml:"speed"`
	Items []ItemState `yaml:"items"`
}

func toPointState(p flight.Point) PointState {
	return PointState{X: p.X, Y: p.Y}
}

func (p PointState) point() flight.Point {
	return flight.Point{X: p.X, Y: p.Y}
}

func SaveState(g *Game, filename string) error {
	state := AppState{
		Width: g.anim.Layout().Width,
		Speed: g.anim.Speed(),
	}
	for _, it := range g.anim.Items() {
		state.Items = append(state.Items, ItemState{
			ID:     it.ID,
			X:      it.X,
			Y:      it.Y,
			Status: it.Status.String(),
			Path: PathState{
				Start:   toPointState(it.Path.Start),
				Control: toPointState(it.Path.Control),
				End:     toPointState(it.Path.End),
			},
		})
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return err
	}
	return enc.Close()
}

// LoadState replaces the game's items with a saved snapshot. The snapshot
// must come from a container of the same width.
func LoadState(g *Game, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var state AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if width := g.anim.Layout().Width; state.Width != width {
		return fmt.Errorf("%s: saved for width %v, running at %v", filename, state.Width, width)
	}

	items := make([]flight.Item, 0, len(state.Items))
	for _, is := range state.Items {
		status, err := flight.ParseStatus(is.Status)
		if err != nil {
			return fmt.Errorf("%s: item %s: %w", filename, is.ID, err)
		}
		items = append(items, flight.Item{
			ID:     is.ID,
			X:      is.X,
			Y:      is.Y,
			Status: status,
			Path: flight.FlightPath{
				Start:   is.Path.Start.point(),
				Control: is.Path.Control.point(),
				End:     is.Path.End.point(),
			},
		})
	}
	if err := g.anim.Restore(items); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if state.Speed > 0 {
		g.anim.SetSpeed(state.Speed)
	}
	g.eatenAt = make(map[string]time.Time)
	return nil
}
