// Package settings loads the optional yaml settings file.
package settings

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 900.0
	DefaultScale    = 1.0
	DefaultTickRate = 60
	DefaultState    = "flight_state.yaml"
)

var ErrInvalidWidth = errors.New("settings: width must be positive")

// Settings is the on-disk configuration. Zero fields take defaults.
type Settings struct {
	// Width is the container width in container units; height is width/3.
	Width float64 `yaml:"width"`
	// Speed is the per-frame travel speed. Zero keeps flight.TravelSpeed.
	Speed float64 `yaml:"speed"`
	// Scale is screen pixels per container unit in the desktop window.
	Scale float64 `yaml:"scale"`
	// TickRate is frames per second for the terminal frontend.
	TickRate   int    `yaml:"tick_rate"`
	Seed       uint64 `yaml:"seed"`
	PathScript string `yaml:"path_script"`
	Mute       bool   `yaml:"mute"`
	StatePath  string `yaml:"state_path"`
}

func Default() Settings {
	s := Settings{}
	s.applyDefaults()
	return s
}

func (s *Settings) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Scale == 0 {
		s.Scale = DefaultScale
	}
	if s.TickRate == 0 {
		s.TickRate = DefaultTickRate
	}
	if s.StatePath == "" {
		s.StatePath = DefaultState
	}
}

func (s Settings) Validate() error {
	if !finite(s.Width) || s.Width <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, s.Width)
	}
	if !finite(s.Speed) || s.Speed < 0 {
		return fmt.Errorf("settings: speed must be a finite non-negative number: %v", s.Speed)
	}
	if !finite(s.Scale) || s.Scale <= 0 {
		return fmt.Errorf("settings: scale must be positive: %v", s.Scale)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("settings: tick_rate must be positive: %d", s.TickRate)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Parse decodes yaml settings, fills defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads settings from path. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
