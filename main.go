package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sharpshots/game"
	"sharpshots/screen"
)

func main() {
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one")
	profile := flag.String("profiles", "", "Capture CPU profiles into this directory when the frame rate drops")
	flag.Parse()

	config := game.DefaultConfig()
	config.Seed = *seed

	session := game.NewSession(config, game.NewWallClock(), screen.KeyboardInput{})

	var profiler *screen.Profiler
	if *profile != "" {
		profiler = screen.NewProfiler(*profile)
	}
	g := screen.New(session, profiler)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sharp Shots")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
