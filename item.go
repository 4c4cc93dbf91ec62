package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"file-flight/flight"
)

func (g *Game) drawPlanet(screen *ebiten.Image, l flight.Layout) {
	p := l.Planet()
	sx, sy := g.camera.WorldToScreen(p.X, p.Y)
	r := float32(PlanetRadiusRatio * l.Height * g.camera.Zoom)

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, ColorPlanet, true)
	// a couple of continents
	vector.DrawFilledCircle(screen, float32(sx)-r*0.35, float32(sy)-r*0.2, r*0.35, ColorPlanetLand, true)
	vector.DrawFilledCircle(screen, float32(sx)+r*0.3, float32(sy)+r*0.35, r*0.25, ColorPlanetLand, true)
	vector.StrokeCircle(screen, float32(sx), float32(sy), r*1.25, 2, ColorPlanetRing, true)
}

// gulp is how far into its eating animation the folder is: 0 when idle,
// rising to 1 and back to 0 over EatAnimation after each capture.
func (g *Game) gulp() float64 {
	now := g.now()
	peak := 0.0
	for _, at := range g.eatenAt {
		elapsed := now.Sub(at)
		if elapsed < 0 || elapsed >= EatAnimation {
			continue
		}
		f := float64(elapsed) / float64(EatAnimation)
		peak = math.Max(peak, math.Sin(f*math.Pi))
	}
	return peak
}

func (g *Game) drawFolder(screen *ebiten.Image, l flight.Layout) {
	target := l.Target()
	zoom := g.camera.Zoom

	// capture zone
	cx, cy := g.camera.WorldToScreen(target.X, target.Y)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(l.CaptureRadius()*zoom), ColorCaptureRing, true)

	scale := 1 + GulpPulse*g.gulp()
	w := FolderWidthRatio * l.Height * scale
	h := FolderHeightRatio * l.Height * scale
	x, y := g.camera.WorldToScreen(target.X-w/2, target.Y-h/2)
	sw, sh := w*zoom, h*zoom

	// Tab
	vector.DrawFilledRect(screen, float32(x), float32(y-sh*0.18), float32(sw*0.4), float32(sh*0.2), ColorFolderTab, false)
	// Body
	vector.DrawFilledRect(screen, float32(x+ShadowOffset*zoom), float32(y+ShadowOffset*zoom), float32(sw), float32(sh), ColorShadow, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(sw), float32(sh), ColorFolder, false)
	// Mouth opens while gulping
	mouth := float32(sh) * float32(0.1+0.3*g.gulp())
	vector.DrawFilledRect(screen, float32(x+sw*0.1), float32(y+sh*0.2), float32(sw*0.8), mouth, ColorFolderMouth, false)
}

// drawItem draws a file icon centered on the item. Eaten files shrink into
// the folder and then disappear.
func (g *Game) drawItem(screen *ebiten.Image, it *flight.Item) {
	scale := 1.0
	if it.Status == flight.Eaten {
		at, ok := g.eatenAt[it.ID]
		if !ok {
			return
		}
		elapsed := g.now().Sub(at)
		if elapsed >= EatAnimation {
			return
		}
		scale = 1 - float64(elapsed)/float64(EatAnimation)
	}

	l := g.anim.Layout()
	zoom := g.camera.Zoom
	w := FileWidthRatio * l.Height * scale * zoom
	h := FileHeightRatio * l.Height * scale * zoom
	cx, cy := g.camera.WorldToScreen(it.X, it.Y)
	x, y := cx-w/2, cy-h/2
	ear := w * DogEarRatio

	g.drawItemBody(screen, x, y, w, h, ear, zoom)
	g.drawItemBorder(screen, it, x, y, w, h, zoom)
}

func (g *Game) drawItemBody(screen *ebiten.Image, x, y, w, h, ear, zoom float64) {
	// Shadow
	vector.DrawFilledRect(screen, float32(x+ShadowOffset*zoom), float32(y+ShadowOffset*zoom), float32(w), float32(h), ColorShadow, false)
	// Sheet, minus the folded corner
	vector.DrawFilledRect(screen, float32(x), float32(y+ear), float32(w), float32(h-ear), ColorFile, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w-ear), float32(ear), ColorFile, false)

	// Folded corner
	vector.DrawFilledRect(screen, float32(x+w-ear), float32(y), float32(ear), float32(ear), ColorFileDogEar, false)
	vector.StrokeLine(screen, float32(x+w-ear), float32(y), float32(x+w), float32(y+ear), 1, ColorFileLines, true)

	// Text lines
	for i := 1; i <= 3; i++ {
		ly := y + ear + (h-ear)*float64(i)/4
		vector.StrokeLine(screen, float32(x+w*0.2), float32(ly), float32(x+w*0.8), float32(ly), 1, ColorFileLines, false)
	}
}

func (g *Game) drawItemBorder(screen *ebiten.Image, it *flight.Item, x, y, w, h, zoom float64) {
	var borderColor color.RGBA
	switch {
	case it == g.anim.Grabbed():
		borderColor = ColorItemGrabbed
	case it.ID == g.pointer.HoverID && g.anim.Grabbed() == nil:
		borderColor = ColorItemHover
	default:
		return
	}

	offset := float32(BorderOffset * zoom)
	thickness := float32(BorderWidth * zoom)
	vector.StrokeRect(screen,
		float32(x)-offset-thickness/2,
		float32(y)-offset-thickness/2,
		float32(w)+2*(offset+thickness/2),
		float32(h)+2*(offset+thickness/2),
		thickness, borderColor, false)
}
