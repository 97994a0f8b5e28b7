package tui

import "github.com/vovakirdan/tui-tetris/internal/core"

// Game is the interface the platform drives. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping, timing and
// terminal output.
type Game interface {
	// ID returns a stable identifier used in file names (e.g. "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize changes the available screen area without restarting.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick. Actions in the frame
	// are applied in arrival order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameFactory creates a fresh game. Sessions call it once per play.
type GameFactory func() (Game, error)
