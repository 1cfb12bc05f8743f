package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"torus-life/internal/sim"
)

// ParticleSize is the side of the filled square drawn per particle.
const ParticleSize = 3.0

// Game is the ebiten front end. It owns the world for the run: Update steps
// it, Draw only reads the resulting snapshot, so rendering never observes a
// half-finished tick.
type Game struct {
	world   *sim.World
	paused  bool
	overlay bool
}

// New creates the front end around an initialized world.
func New(world *sim.World) *Game {
	return &Game{world: world}
}

// Update is called once per tick by ebiten.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reseed(time.Now().UnixNano())
	}

	if g.paused {
		return nil
	}
	g.world.Step()
	return nil
}

// Draw renders the current snapshot as filled squares on black.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	kinds := g.world.Config().Matrix.Kinds()
	for _, p := range g.world.Snapshot() {
		vector.DrawFilledRect(screen,
			float32(p.X), float32(p.Y),
			ParticleSize, ParticleSize,
			KindColor(p.Kind, kinds), false)
	}

	if g.overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	s := g.world.Summary()
	msg := fmt.Sprintf("tick: %d  tps: %.1f  fps: %.1f\n", s.Tick, ebiten.ActualTPS(), ebiten.ActualFPS())
	msg += fmt.Sprintf("population: %d  mean step: %.4f  max step: %.4f\n", s.Population, s.MeanStep, s.MaxStep)
	for k, ks := range s.Kinds {
		msg += fmt.Sprintf("kind %d: %d at (%.1f, %.1f)\n", k, ks.Count, ks.CentroidX, ks.CentroidY)
	}
	if g.paused {
		msg += "paused\n"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the fixed world-sized viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.world.Config()
	return int(cfg.Width), int(cfg.Height)
}
