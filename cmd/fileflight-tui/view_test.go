package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"

	"file-flight/flight"
	"file-flight/settings"
)

func TestCellBoundsFitsWidth(t *testing.T) {
	l := flight.NewLayout(300)
	b := cellBounds(l, 82, 40)

	if b.Left != 1 || b.Top != 2 {
		t.Errorf("Expected container at (1, 2), got (%v, %v)", b.Left, b.Top)
	}
	if b.ScaleY*cellAspect != b.ScaleX {
		t.Errorf("Expected %v:1 cell aspect, got %v / %v", cellAspect, b.ScaleX, b.ScaleY)
	}

	x, y := toCell(b, l.Target())
	if x != 67 || y != 8 {
		t.Errorf("Expected target in cell (67, 8), got (%d, %d)", x, y)
	}
}

func TestCellBoundsFitsHeight(t *testing.T) {
	l := flight.NewLayout(300)
	b := cellBounds(l, 202, 10)

	// 10 rows leave 7 inside the border below the HUD.
	if got := l.Height * b.ScaleY; got > 7+1e-9 {
		t.Errorf("Expected container to fit 7 rows, uses %v", got)
	}
	if got := l.Width * b.ScaleX; got > 200+1e-9 {
		t.Errorf("Expected container to fit 200 cols, uses %v", got)
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	l := flight.NewLayout(300)
	b := cellBounds(l, 82, 40)

	cx, cy := cellCenter(toCell(b, l.Planet()))
	x, y := toCell(b, b.ToContainer(cx, cy))
	px, py := toCell(b, l.Planet())
	if x != px || y != py {
		t.Errorf("Expected cell (%d, %d), got (%d, %d)", px, py, x, y)
	}
}

func testSettings() settings.Settings {
	s := settings.Default()
	s.Width = 300
	s.Mute = true
	return s
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	return newTestAppWith(t, testSettings())
}

func newTestAppWith(t *testing.T, s settings.Settings) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(82, 40)
	t.Cleanup(screen.Fini)

	a, err := newApp(s, screen)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(a.close)
	return a
}

func TestAppDragAndCapture(t *testing.T) {
	a := newTestApp(t)
	it := a.anim.Items()[0]
	x, y := toCell(a.view.bounds, it.Pos())

	a.pointer.mouse(x, y, true)
	if a.anim.Grabbed() != it {
		t.Fatal("Expected mouse down to grab the seed item")
	}

	tx, ty := toCell(a.view.bounds, a.anim.Layout().Target())
	a.pointer.mouse(tx, ty, true)
	a.loop.Tick()
	if it.Status != flight.Eaten {
		t.Fatalf("Expected item dropped on the folder to be eaten, got %v", it.Status)
	}
	if a.anim.Grabbed() != nil {
		t.Error("Expected the eaten item to be released")
	}
	if !a.gulping() {
		t.Error("Expected the folder to gulp")
	}

	a.pointer.mouse(tx, ty, false)
	if a.pointer.held {
		t.Error("Expected button released")
	}
}

func TestAppKeys(t *testing.T) {
	a := newTestApp(t)

	a.key('l')
	if n := len(a.anim.Items()); n != 2 {
		t.Fatalf("Expected 2 items after launch, got %d", n)
	}

	old := a.anim
	a.key('r')
	if a.anim == old || old.Running() {
		t.Fatal("Expected reset to replace the animator")
	}
	if n := len(a.anim.Items()); n != 1 {
		t.Errorf("Expected 1 item after reset, got %d", n)
	}
}

func TestResetKeepsFrameOrder(t *testing.T) {
	a := newTestApp(t)
	want := []string{"events", "flight", "draw"}
	if got := a.loop.Names(); !slices.Equal(got, want) {
		t.Fatalf("Expected tasks %v, got %v", want, got)
	}

	a.key('r')
	a.key('r')

	if got := a.loop.Names(); !slices.Equal(got, want) {
		t.Errorf("Expected tasks %v after reset, got %v", want, got)
	}
}

func TestPathScriptShapesTerminalPaths(t *testing.T) {
	script := filepath.Join(t.TempDir(), "flat.star")
	if err := os.WriteFile(script, []byte("control_x = width / 2\ncontrol_y = height / 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := testSettings()
	s.PathScript = script

	a := newTestAppWith(t, s)
	want := flight.Point{X: 150, Y: 50}
	if got := a.anim.Items()[0].Path.Control; got != want {
		t.Errorf("Expected control %+v, got %+v", want, got)
	}
}

func TestMissingPathScriptFallsBack(t *testing.T) {
	s := testSettings()
	s.PathScript = filepath.Join(t.TempDir(), "missing.star")

	a := newTestAppWith(t, s)
	if a.shaper != nil {
		t.Error("Expected the default shaper")
	}
	if a.status == "" {
		t.Error("Expected the script failure in the status line")
	}
}

func TestReloadSettingsAppliesSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")
	if err := os.WriteFile(path, []byte("width: 300\nspeed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t)
	a.configPath = path

	if err := a.reloadSettings(); err != nil {
		t.Fatalf("reloadSettings: %v", err)
	}
	if a.anim.Speed() != 4 {
		t.Errorf("Expected speed 4, got %v", a.anim.Speed())
	}

	if err := os.WriteFile(path, []byte("speed: .nan\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.reloadSettings(); err == nil {
		t.Error("Expected a NaN speed to be rejected")
	}
	if a.anim.Speed() != 4 {
		t.Errorf("Rejected reload must keep speed 4, got %v", a.anim.Speed())
	}
}
