package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

const (
	buttonWidth  = 70
	buttonHeight = 26
	buttonMargin = 10
)

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), onLaunch func(), onReset func(), drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "launch", W: buttonWidth, H: buttonHeight, OnClick: onLaunch},
		{Label: "reset", W: buttonWidth, H: buttonHeight, OnClick: onReset},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions lays the buttons out right to left along the top
// edge.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - buttonMargin
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = buttonMargin
		x -= buttonMargin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	mx, my := ebiten.CursorPosition()
	ui.HandlePointer(mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
}

// HandlePointer updates hover state and fires the clicked button, if any.
// It reports whether a button was clicked.
func (ui *UISystem) HandlePointer(mx, my int, pressed bool) bool {
	ui.updateButtonPositions()
	clicked := false
	for _, b := range ui.buttons {
		b.Hovered = b.IsMouseOver(mx, my)
		if pressed && b.Hovered && !clicked {
			clicked = true
			if b.OnClick != nil {
				b.OnClick()
			}
		}
	}
	return clicked
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
