// Command fileflight-tui runs the file flight in a terminal. Drag a file with
// the mouse; l launches another one, r starts over, q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"file-flight/engine"
	"file-flight/flight"
	"file-flight/frame"
	"file-flight/settings"
)

const (
	starCount   = 40
	gulpFrames  = 12
	grabCells   = 1.5
	eventBuffer = 100
)

type app struct {
	settings settings.Settings
	screen   tcell.Screen
	view     *view
	pointer  *termPointer
	loop     *frame.Loop
	anim     *flight.Animator
	shaper   flight.Shaper
	sound    *chomp
	stars    []flight.Point

	configPath string
	watcher    *settings.Watcher

	events chan tcell.Event
	cancel context.CancelFunc
	resets int
	gulp   int
	status string
}

func newApp(s settings.Settings, screen tcell.Screen) (*app, error) {
	a := &app{
		settings: s,
		screen:   screen,
		loop:     frame.NewLoop(),
		events:   make(chan tcell.Event, eventBuffer),
	}
	a.pointer = newTermPointer(a)

	// The container's cell box is fixed at start; resizing the terminal
	// does not move it.
	cols, rows := screen.Size()
	layout := flight.NewLayout(s.Width)
	a.view = &view{screen: screen, bounds: cellBounds(layout, cols, rows)}
	a.stars = starfield(layout, starCount, s.Seed)

	if s.PathScript != "" {
		if shaper, err := loadShaper(s.PathScript); err != nil {
			a.onShaperError(err)
		} else {
			a.shaper = shaper
		}
	}

	a.loop.Schedule("events", a.drainEvents)
	if err := a.reset(); err != nil {
		return nil, err
	}
	a.loop.Schedule("draw", func() { a.view.draw(a) })
	return a, nil
}

func (a *app) reset() error {
	anim, err := flight.New(flight.Config{
		Width:         a.settings.Width,
		Speed:         a.settings.Speed,
		Bounds:        a.view.bounds,
		Pointer:       a.pointer,
		Shaper:        a.shaper,
		Seed:          a.settings.Seed + uint64(a.resets),
		OnEaten:       a.onEaten,
		OnShaperError: a.onShaperError,
	})
	if err != nil {
		return err
	}
	anim.Start(a.loop)
	if a.anim != nil {
		a.anim.Close()
	}
	a.resets++
	a.anim = anim
	a.gulp = 0
	return nil
}

func (a *app) onEaten(it *flight.Item) {
	a.gulp = gulpFrames
	a.sound.play()
	a.status = "chomp!"
}

func (a *app) onShaperError(err error) {
	log.Println("path script:", err)
	a.status = "path script failed, see log"
}

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

// watch reloads the speed from the settings file whenever it changes.
func (a *app) watch(path string) error {
	w, err := settings.NewWatcher(path)
	if err != nil {
		return err
	}
	a.configPath = path
	a.watcher = w
	return nil
}

func (a *app) reloadSettings() error {
	s, err := settings.Load(a.configPath)
	if err != nil {
		log.Println("reload settings:", err)
		a.status = "bad settings, see log"
		return err
	}
	a.settings.Speed = s.Speed
	a.anim.SetSpeed(s.Speed)
	a.status = ""
	log.Printf("settings reloaded: speed %.2f", a.anim.Speed())
	return nil
}

func (a *app) pollSettings() {
	if a.watcher == nil {
		return
	}
	select {
	case _, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		_ = a.reloadSettings()
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Println("settings watch:", err)
		}
	default:
	}
}

func (a *app) gulping() bool {
	return a.gulp > 0
}

func (a *app) nextFlyer() *flight.Item {
	grabbed := a.anim.Grabbed()
	for _, it := range a.anim.Items() {
		if it.Status == flight.Autonomous && it != grabbed {
			return it
		}
	}
	return nil
}

// itemAt and beginDrag make the app the pointer's host.
func (a *app) itemAt(x, y int) string {
	cx, cy := cellCenter(x, y)
	p := a.view.bounds.ToContainer(cx, cy)
	radius := grabCells / a.view.bounds.ScaleX
	if it := a.anim.ItemAt(p, radius); it != nil {
		return it.ID
	}
	return ""
}

func (a *app) beginDrag(id string) bool {
	return a.anim.BeginDrag(id)
}

func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.events <- ev
	}
}

func (a *app) drainEvents() {
	a.pollSettings()
	if a.gulp > 0 {
		a.gulp--
		if a.gulp == 0 {
			a.status = ""
		}
	}
	for {
		select {
		case ev := <-a.events:
			a.handle(ev)
		default:
			return
		}
	}
}

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			a.quit()
			return
		}
		if ev.Key() == tcell.KeyRune {
			a.key(ev.Rune())
		}
	case *tcell.EventMouse:
		a.pointer.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *app) key(r rune) {
	switch r {
	case 'q':
		a.quit()
	case 'l':
		a.anim.Spawn()
	case 'r':
		if err := a.reset(); err != nil {
			log.Println("reset:", err)
		}
	}
}

func (a *app) quit() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *app) run(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	go a.pollEvents()
	err := a.loop.Run(ctx, time.Second/time.Duration(a.settings.TickRate))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) close() {
	a.anim.Close()
	a.sound.close()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Println("settings watch:", err)
		}
		a.watcher = nil
	}
}

func starfield(l flight.Layout, n int, seed uint64) []flight.Point {
	r := rand.New(rand.NewPCG(seed, seed+1))
	stars := make([]flight.Point, n)
	for i := range stars {
		stars[i] = flight.Point{X: r.Float64() * l.Width, Y: r.Float64() * l.Height}
	}
	return stars
}

func main() {
	configPath := flag.String("config", "", "settings yaml file, reloaded when it changes")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal, so log to a file instead.
	if f, err := os.OpenFile("fileflight-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	a, err := newApp(s, screen)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	if *configPath != "" {
		if err := a.watch(*configPath); err != nil {
			log.Println("settings watch:", err)
		}
	}
	if !s.Mute {
		// Non-fatal, the flight runs without sound
		if a.sound, err = newChomp(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}

	err = a.run(context.Background())
	a.close()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
