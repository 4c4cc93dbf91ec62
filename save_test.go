package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"file-flight/flight"
)

func TestSaveLoadItems(t *testing.T) {
	// Setup
	filename := filepath.Join(t.TempDir(), "test_state.yaml")

	g := newTestGame(t)
	g.Launch()
	for i := 0; i < 10; i++ {
		g.loop.Tick()
	}
	first := g.anim.Items()[0]
	first.Status = flight.Eaten

	// Save
	if err := SaveState(g, filename); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	// New Game instance for loading
	g2 := newTestGame(t)
	if err := LoadState(g2, filename); err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	// Verify
	saved := g.anim.Items()
	loaded := g2.anim.Items()
	if len(loaded) != len(saved) {
		t.Fatalf("Expected %d items loaded, got %d", len(saved), len(loaded))
	}
	for i := range saved {
		if *loaded[i] != *saved[i] {
			t.Errorf("Item %d: expected %+v, got %+v", i, *saved[i], *loaded[i])
		}
	}
	if g2.anim.Speed() != g.anim.Speed() {
		t.Errorf("Expected speed %v, got %v", g.anim.Speed(), g2.anim.Speed())
	}
}

func TestLoadStateRejectsOtherWidth(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.yaml")
	g := newTestGame(t)
	if err := SaveState(g, filename); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	s := testSettings()
	s.Width = 600
	g2, err := NewGame(s)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	before := g2.anim.Items()

	err = LoadState(g2, filename)
	if err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("Expected width mismatch error, got %v", err)
	}
	if len(g2.anim.Items()) != len(before) || g2.anim.Items()[0] != before[0] {
		t.Error("Failed load must leave items untouched")
	}
}

func TestLoadStateRejectsUnknownStatus(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.yaml")
	data := `width: 300
items:
  - id: abc
    x: 60
    y: 50
    status: digested
`
	if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newTestGame(t)
	if err := LoadState(g, filename); err == nil {
		t.Fatal("Expected error for unknown status")
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	g := newTestGame(t)
	if err := LoadState(g, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
