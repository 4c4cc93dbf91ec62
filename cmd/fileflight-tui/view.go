package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"file-flight/flight"
)

const (
	hudRows    = 1
	borderSize = 1

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleStar   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Dim(true)
	stylePlanet = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleFolder = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleFile   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHover  = tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue).Bold(true)
	styleGrab   = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Dim(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// cellBounds fits a container of the given layout into a cols x rows
// terminal, below the HUD line and inside a one-cell border. Mouse cells map
// back to container coordinates through the returned bounds.
func cellBounds(l flight.Layout, cols, rows int) flight.Bounds {
	innerW := float64(cols - 2*borderSize)
	innerH := float64(rows - hudRows - 2*borderSize)
	sx := innerW / l.Width
	sy := sx / cellAspect
	if l.Height*sy > innerH {
		sy = innerH / l.Height
		sx = sy * cellAspect
	}
	return flight.Bounds{
		Left:   borderSize,
		Top:    hudRows + borderSize,
		ScaleX: sx,
		ScaleY: sy,
	}
}

// toCell returns the cell a container point falls in.
func toCell(b flight.Bounds, p flight.Point) (int, int) {
	x, y := b.ToClient(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellCenter is the client position reported for a mouse event on a cell.
func cellCenter(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

type view struct {
	screen tcell.Screen
	bounds flight.Bounds
}

func (v *view) draw(app *app) {
	s := v.screen
	s.Clear()

	l := app.anim.Layout()
	v.drawBorder(l)

	auto, eaten := app.anim.Counts()
	hud := fmt.Sprintf(" files in flight: %d  eaten: %d  speed: %.1f  [l]aunch [r]eset [q]uit", auto, eaten, app.anim.Speed())
	if app.status != "" {
		hud += "  " + app.status
	}
	v.text(0, 0, hud, styleHUD)

	for _, st := range app.stars {
		x, y := toCell(v.bounds, st)
		s.SetContent(x, y, '.', nil, styleStar)
	}

	if it := app.nextFlyer(); it != nil {
		from := it.Progress()
		for i := 0; i <= pathDots; i++ {
			t := from + (1-from)*float64(i)/pathDots
			x, y := toCell(v.bounds, it.Path.At(t))
			s.SetContent(x, y, '·', nil, stylePath)
		}
	}

	px, py := toCell(v.bounds, l.Planet())
	s.SetContent(px, py, '◉', nil, stylePlanet)

	fx, fy := toCell(v.bounds, l.Target())
	mouth := '▭'
	if app.gulping() {
		mouth = '▬'
	}
	s.SetContent(fx-1, fy, '▐', nil, styleFolder)
	s.SetContent(fx, fy, mouth, nil, styleFolder)
	s.SetContent(fx+1, fy, '▌', nil, styleFolder)

	grabbed := app.anim.Grabbed()
	for _, it := range app.anim.Items() {
		if it.Status == flight.Eaten {
			continue
		}
		style := styleFile
		switch {
		case it == grabbed:
			style = styleGrab
		case it.ID == app.pointer.hoverID:
			style = styleHover
		}
		x, y := toCell(v.bounds, it.Pos())
		s.SetContent(x, y, '▤', nil, style)
	}

	s.Show()
}

const pathDots = 24

func (v *view) drawBorder(l flight.Layout) {
	x0, y0 := int(v.bounds.Left)-borderSize, int(v.bounds.Top)-borderSize
	x1, y1 := toCell(v.bounds, flight.Point{X: l.Width, Y: l.Height})
	for x := x0 + 1; x < x1; x++ {
		v.screen.SetContent(x, y0, '─', nil, styleBorder)
		v.screen.SetContent(x, y1, '─', nil, styleBorder)
	}
	for y := y0 + 1; y < y1; y++ {
		v.screen.SetContent(x0, y, '│', nil, styleBorder)
		v.screen.SetContent(x1, y, '│', nil, styleBorder)
	}
	v.screen.SetContent(x0, y0, '┌', nil, styleBorder)
	v.screen.SetContent(x1, y0, '┐', nil, styleBorder)
	v.screen.SetContent(x0, y1, '└', nil, styleBorder)
	v.screen.SetContent(x1, y1, '┘', nil, styleBorder)
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
