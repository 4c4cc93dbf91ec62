package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"file-flight/settings"
)

func main() {
	configPath := flag.String("config", "", "settings yaml file, reloaded when it changes")
	width := flag.Float64("width", 0, "container width (overrides settings)")
	statePath := flag.String("state", "", "snapshot to load at start")
	mute := flag.Bool("mute", false, "no chomp sound")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		s.Width = *width
	}
	if *mute {
		s.Mute = true
	}

	game, err := NewGame(s)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if !s.Mute {
		game.EnableSound()
	}
	if *configPath != "" {
		if err := game.Watch(*configPath); err != nil {
			log.Println("settings watch:", err)
		}
	}
	if *statePath != "" {
		if err := LoadState(game, *statePath); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(game.screenWidth, game.screenHeight)
	ebiten.SetWindowTitle("File Flight")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
