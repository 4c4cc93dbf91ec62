package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) hudText() string {
	autonomous, eaten := g.anim.Counts()
	return fmt.Sprintf(
		"Flying: %d  Eaten: %d  Speed: %.1f  FPS: %.0f\n"+
			"Drag a file | L: launch  R: reset  Ctrl+S: save  F12: screenshot",
		autonomous, eaten, g.anim.Speed(), ebiten.ActualFPS(),
	)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.hudText(), int(ScreenMargin), 6)
}
