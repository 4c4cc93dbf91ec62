package main

import (
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"file-flight/canvas"
	"file-flight/flight"
	"file-flight/frame"
	"file-flight/input"
	"file-flight/settings"
	"file-flight/sound"
	"file-flight/ui"
)

type Game struct {
	settings   settings.Settings
	configPath string

	anim   *flight.Animator
	loop   *frame.Loop
	shaper flight.Shaper
	resets int

	camera       canvas.Camera
	stars        []canvas.Star
	screenWidth  int
	screenHeight int

	// Sub-systems
	pointer *input.Pointer
	ui      *ui.UISystem
	face    font.Face
	chomp   *sound.Chomp
	watcher *settings.Watcher

	eatenAt map[string]time.Time
	now     func() time.Time

	screenshotRequested bool
	quitRequested       bool
}

// NewGame builds the scene. The container's screen box is fixed here and
// never changes afterwards; the window is not resizable.
func NewGame(s settings.Settings) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	layout := flight.NewLayout(s.Width)

	g := &Game{
		settings: s,
		loop:     frame.NewLoop(),
		stars:    canvas.Starfield(layout, StarCount, s.Seed),
		eatenAt:  make(map[string]time.Time),
		now:      time.Now,
	}
	g.screenWidth = int(math.Ceil(layout.Width*s.Scale + 2*ScreenMargin))
	g.screenHeight = int(math.Ceil(layout.Height*s.Scale + 2*ScreenMargin + HUDHeight))
	g.camera = canvas.Camera{Left: ScreenMargin, Top: ScreenMargin + HUDHeight, Zoom: s.Scale}

	g.pointer = input.NewPointer(g)
	g.face = LoadUIFont()
	g.ui = ui.NewUISystem(g.fontFace, g.screenSize, g.Launch, g.Reset, DrawTextLines)

	if s.PathScript != "" {
		shaper, err := loadShaper(s.PathScript)
		if err != nil {
			log.Println("path script:", err)
			g.ui.Debug.SetError(err.Error())
		} else {
			g.shaper = shaper
		}
	}

	g.Reset()
	if g.anim == nil {
		return nil, fmt.Errorf("game: animator did not start")
	}
	return g, nil
}

// Reset throws the current items away and starts over with a fresh seed item.
func (g *Game) Reset() {
	anim, err := flight.New(flight.Config{
		Width:         g.settings.Width,
		Speed:         g.settings.Speed,
		Bounds:        g.camera.Bounds(),
		Pointer:       g.pointer,
		Shaper:        g.shaper,
		Seed:          g.settings.Seed + uint64(g.resets),
		OnEaten:       g.onEaten,
		OnShaperError: g.onShaperError,
	})
	if err != nil {
		log.Println("reset:", err)
		return
	}
	// The new flight task takes over the old one's slot before the old
	// animator lets go of the pointer.
	anim.Start(g.loop)
	if g.anim != nil {
		g.anim.Close()
	}
	g.resets++
	g.anim = anim
	g.eatenAt = make(map[string]time.Time)
}

// Launch sends another file from the planet.
func (g *Game) Launch() {
	it := g.anim.Spawn()
	log.Printf("launched file %s", it.ID)
}

// EnableSound plays a chomp whenever the folder eats a file.
func (g *Game) EnableSound() {
	g.chomp = sound.NewChomp()
}

// Watch reloads settings from path whenever the file changes.
func (g *Game) Watch(path string) error {
	w, err := settings.NewWatcher(path)
	if err != nil {
		return err
	}
	g.configPath = path
	g.watcher = w
	return nil
}

// ReloadSettings re-reads the settings file and applies what can change
// while running. Width and scale need a restart.
func (g *Game) ReloadSettings() error {
	s, err := settings.Load(g.configPath)
	if err != nil {
		log.Println("reload settings:", err)
		g.ui.Debug.SetError(err.Error())
		return err
	}
	g.settings.Speed = s.Speed
	g.anim.SetSpeed(s.Speed)
	g.ui.Debug.Clear()
	log.Printf("settings reloaded: speed %.2f", g.anim.Speed())
	return nil
}

func (g *Game) Close() {
	g.anim.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Println("settings watch:", err)
		}
		g.watcher = nil
	}
}

func (g *Game) onEaten(it *flight.Item) {
	g.eatenAt[it.ID] = g.now()
	g.chomp.Play()
	log.Printf("file %s eaten", it.ID)
}

func (g *Game) onShaperError(err error) {
	log.Println("path script:", err)
	g.ui.Debug.SetError(err.Error())
}

// --- input.Host ---

func (g *Game) ItemAt(sx, sy float64) string {
	if g.ui.IsMouseOver(int(sx), int(sy)) {
		return ""
	}
	p := g.anim.Bounds().ToContainer(sx, sy)
	if it := g.anim.ItemAt(p, g.grabRadius()); it != nil {
		return it.ID
	}
	return ""
}

func (g *Game) BeginDrag(id string) bool {
	return g.anim.BeginDrag(id)
}

func (g *Game) grabRadius() float64 {
	return ItemGrabRadius * FileHeightRatio * g.anim.Layout().Height
}

// --- ebiten.Game ---

func (g *Game) Update() error {
	g.handleControlKeys()
	if g.quitRequested {
		g.Close()
		return ebiten.Termination
	}

	g.ui.Update()
	g.pointer.Update()
	g.pollSettings()
	g.loop.Tick()
	return nil
}

func (g *Game) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quitRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.Launch()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveState(g, g.settings.StatePath); err != nil {
			log.Println("save:", err)
			g.ui.Debug.SetError(err.Error())
		} else {
			log.Println("state saved as", g.settings.StatePath)
		}
	}
}

func (g *Game) pollSettings() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		_ = g.ReloadSettings()
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Println("settings watch:", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	layout := g.anim.Layout()
	canvas.DrawBackground(&g.camera, screen, layout, g.stars, ColorSpace, ColorStar, ColorContainerBorder)

	g.drawPlanet(screen, layout)
	g.drawFlightPath(screen)
	g.drawFolder(screen, layout)
	for _, it := range g.anim.Items() {
		g.drawItem(screen, it)
	}

	g.drawHUD(screen)
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen, "screenshot.png")
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Println("screenshot error:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		log.Println("screenshot error:", err)
		return
	}
	log.Println("Screenshot saved as", filename)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) fontFace() font.Face {
	return g.face
}

func (g *Game) screenSize() (int, int) {
	return g.screenWidth, g.screenHeight
}
