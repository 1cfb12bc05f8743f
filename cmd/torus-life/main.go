package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/logging"
	"torus-life/internal/render"
	"torus-life/internal/sim"
)

func main() {
	opts, err := loadOptions()
	if err != nil {
		logging.New("error").Fatalf("configuration: %v", err)
	}
	logger := logging.New(opts.LogLevel)

	world, err := sim.NewWorldWithLogger(opts.simConfig(), logger)
	if err != nil {
		logger.Fatalf("world: %v", err)
	}

	ebiten.SetWindowSize(int(opts.Width), int(opts.Height))
	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(render.New(world)); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
