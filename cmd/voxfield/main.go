//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"voxfield/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	content, err := cfg.StageContent()
	if err != nil {
		log.Fatalf("stage content: %v", err)
	}

	game := app.New(cfg, content)
	defer game.Close()

	ebiten.SetWindowTitle("voxfield")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
