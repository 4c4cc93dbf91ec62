package main

import (
	"file-flight/engine"
	"file-flight/flight"
)

// loadShaper loads the starlark path script named in settings.
func loadShaper(path string) (flight.Shaper, error) {
	script, err := engine.LoadPathScript(path)
	if err != nil {
		return nil, err
	}
	if err := script.Check(); err != nil {
		return nil, err
	}
	return script, nil
}
