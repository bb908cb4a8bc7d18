package sprout

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	colorPlatform   = Color{R: 0.35, G: 0.55, B: 0.35, A: 1}
	colorPlayer     = Color{R: 0.95, G: 0.75, B: 0.3, A: 1}
	colorPad        = Color{R: 1, G: 1, B: 1, A: 0.15}
)

// GameConfig describes a playable scene: a graph driving one body in a level.
type GameConfig struct {
	Graph *Graph
	Level Level
	Spawn Vec2
	Body  BodyConfig

	// Input defaults to an EbitenInput with a virtual pad sized to the level.
	Input InputSource

	// Script, when set, replaces device input with scripted frames.
	Script *InputScript

	Gravity float64
	Logger  *slog.Logger
	Debug   bool
}

// Game hosts a Processor inside the ebiten game loop. Each frame it polls
// input, ticks the graph, steps the body, and advances the landing squash.
type Game struct {
	Graph     *Graph
	Body      *Body
	Level     Level
	Processor *Processor

	squash   *Squash
	script   *InputScript
	scripted *ScriptedInput
	pad      *VirtualPad
}

// NewGame wires a graph, body, and input source together.
func NewGame(cfg GameConfig) *Game {
	if cfg.Graph == nil {
		cfg.Graph = NewGraph()
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = DefaultGravity
	}
	cfg.Body.Gravity = cfg.Gravity

	g := &Game{
		Graph:  cfg.Graph,
		Body:   NewBody(cfg.Spawn.X, cfg.Spawn.Y, cfg.Body),
		Level:  cfg.Level,
		squash: NewSquash(),
	}

	input := cfg.Input
	switch {
	case cfg.Script != nil:
		g.script = cfg.Script
		g.scripted = &ScriptedInput{}
		input = g.scripted
	case input == nil:
		ei := NewEbitenInput(DefaultVirtualPad(cfg.Level.Bounds.Width, cfg.Level.Bounds.Height))
		g.pad = &ei.Pad
		input = ei
	}

	g.Processor = NewProcessor(g.Graph, g.Body, ProcessorConfig{
		Gravity: cfg.Gravity,
		Input:   input,
		Logger:  cfg.Logger,
		Debug:   cfg.Debug,
	})
	return g
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64) {
	if g.script != nil {
		g.script.Step(g.scripted)
	}
	g.Processor.Tick(dt)
	if g.Body.Step(dt, &g.Level) {
		g.squash.Start(0.25, 0.4)
	}
	g.squash.Update(float32(dt))
}

// ScriptDone reports whether the attached input script has finished. Always
// false without a script.
func (g *Game) ScriptDone() bool {
	return g.script != nil && g.script.Done()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Step(1.0 / float64(ebiten.TPS()))
	if g.ScriptDone() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground.toRGBA())
	for _, p := range g.Level.Platforms {
		fillRect(screen, p, colorPlatform)
	}

	// Scale the player around its bottom-center so the squash stays on the
	// ground.
	b := g.Body.Bounds()
	w, h := b.Width*g.squash.ScaleX, b.Height*g.squash.ScaleY
	fillRect(screen, Rect{
		X:      b.X + (b.Width-w)/2,
		Y:      b.Y + b.Height - h,
		Width:  w,
		Height: h,
	}, colorPlayer)

	if g.pad != nil {
		for _, r := range []HitRect{g.pad.Left, g.pad.Right, g.pad.Jump, g.pad.Down} {
			fillRect(screen, Rect(r), colorPad)
		}
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.Level.Bounds.Width), int(g.Level.Bounds.Height)
}

func fillRect(dst *ebiten.Image, r Rect, c Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int // zero keeps ebiten's default of 60
}

// Run opens a window and runs the game until it is closed or its input
// script finishes.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(g)
}
