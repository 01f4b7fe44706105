package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	players := flag.Int("players", 0, "1 for player vs computer, 2 for two players (0 uses the config value)")
	configPath := flag.String("config", "", "path to a JSON config overriding the defaults")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *players != 0 {
		cfg.Players = *players
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetFullscreen(*fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
