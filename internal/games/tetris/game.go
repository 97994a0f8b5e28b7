// Package tetris implements the falling-block puzzle: a pure engine (grid,
// pieces, rules) and a Game adapter that drives it from platform ticks.
package tetris

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// scoreRollSeconds is how long the HUD score takes to catch up with the real score.
const scoreRollSeconds = 0.5

// Game adapts the Engine to the platform's fixed-tick loop.
type Game struct {
	rng    *rand.Rand
	engine *Engine

	tick     uint64
	tickRate int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// HUD score animation
	shownScore  float32
	scoreTarget int
	scoreTween  *gween.Tween
}

// New creates a game with the given rules. The configuration is validated
// here so Reset cannot fail later.
func New(cfg config.TetrisConfig) (*Game, error) {
	rng := rand.New(rand.NewSource(1))
	engine, err := NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}

	rc := core.DefaultConfig()
	return &Game{
		rng:      rng,
		engine:   engine,
		tickRate: rc.TickRate,
		screenW:  rc.ScreenW,
		screenH:  rc.ScreenH,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng.Seed(cfg.Seed)
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.engine.Reset()
	g.engine.SetClock(0)
	g.resetScoreAnimation()
	g.checkScreenSize()
}

// Resize updates the layout without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// restart begins a new session in place, keeping the clock running.
func (g *Game) restart() {
	g.engine.Reset()
	g.resetScoreAnimation()
}

func (g *Game) resetScoreAnimation() {
	g.shownScore = 0
	g.scoreTarget = 0
	g.scoreTween = nil
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.layoutSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// clock converts the tick counter to milliseconds.
func (g *Game) clock() int64 {
	return int64(g.tick) * 1000 / int64(g.tickRate)
}

// Step applies the frame's actions in order, then runs gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		// Keep gravity frozen so the piece does not drop on resume.
		g.engine.SetClock(g.clock())
		return core.StepResult{State: g.State()}
	}

	piecesBefore := g.engine.Pieces()

	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			g.engine.MoveLeft()
		case core.ActionRight:
			g.engine.MoveRight()
		case core.ActionSoftDrop:
			g.engine.MoveDown()
		case core.ActionRotate:
			g.engine.Rotate()
		case core.ActionHardDrop:
			g.engine.HardDrop()
		case core.ActionPause:
			g.engine.TogglePause()
		case core.ActionRestart:
			g.restart()
			piecesBefore = 0
		}
	}

	g.engine.Tick(g.clock())
	g.updateScoreAnimation()

	return core.StepResult{
		State:  g.State(),
		Locked: g.engine.Pieces() != piecesBefore,
	}
}

// updateScoreAnimation rolls the HUD score toward the engine score.
func (g *Game) updateScoreAnimation() {
	if target := g.engine.Score(); target != g.scoreTarget {
		g.scoreTarget = target
		g.scoreTween = gween.New(g.shownScore, float32(target), scoreRollSeconds, ease.OutQuad)
	}
	if g.scoreTween == nil {
		return
	}

	value, finished := g.scoreTween.Update(1 / float32(g.tickRate))
	g.shownScore = value
	if finished {
		g.shownScore = float32(g.scoreTarget)
		g.scoreTween = nil
	}
}

// DisplayScore returns the animated score shown in the HUD.
func (g *Game) DisplayScore() int {
	return int(g.shownScore + 0.5)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused() || g.tooSmall,
	}
}
