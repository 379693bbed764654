package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"sharpshots/game"
	"sharpshots/termview"
)

func main() {
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one")
	auto := flag.Bool("auto", false, "Let the autopilot fly")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	// the terminal belongs to tcell, keep log output off it
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	config := game.DefaultConfig()
	config.Seed = *seed
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	var keys *termview.Keys
	var input game.InputProvider
	if *auto {
		input = game.NewAutopilot()
	} else {
		keys = termview.NewKeys()
		input = keys
	}

	session := game.NewSession(config, game.NewWallClock(), input)
	viewer := termview.NewViewer(screen, session, keys)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := viewer.Run(ctx); err != nil {
		screen.Fini()
		log.Fatalf("Viewer stopped: %v", err)
	}
}
