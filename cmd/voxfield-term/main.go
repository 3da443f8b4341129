package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"voxfield/internal/app"
	"voxfield/internal/camera"
	"voxfield/internal/core"
	"voxfield/internal/field"
	"voxfield/internal/stage"
	"voxfield/internal/term"

	"github.com/gdamore/tcell/v2"
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

	rng := core.NewRNG(cfg.Seed)
	if cfg.Seed == 0 {
		rng = core.NewTimeRNG()
	}
	stages := stage.New()
	f := field.NewWithRNG(cfg.Count, stages, rng)

	var chime *term.Chime
	if cfg.Sound {
		if chime, err = term.NewChime(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer chime.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	viewer := term.NewViewer(screen, f, stages, camera.New(cfg.Camera), content, chime, cfg.TPS)
	err = viewer.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
