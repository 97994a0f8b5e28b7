package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Status is the engine's position in the Running/Paused/GameOver state machine.
type Status string

const (
	StatusRunning  Status = "running"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// Engine owns the grid, the falling and queued pieces and every counter of a
// session. It is not safe for concurrent use; one goroutine drives it.
type Engine struct {
	cfg  config.TetrisConfig
	rng  Randomizer
	grid *Grid

	current Piece
	next    Piece

	score        int
	level        int
	lines        int
	fallInterval time.Duration
	lastCleared  int // Rows cleared by the most recent lock
	pieces       int // Pieces locked this session

	paused   bool
	gameOver bool

	now      int64 // Last time seen by Tick, in ms
	lastFall int64 // Time of the last automatic fall, in ms
}

// NewEngine validates cfg and starts a fresh session.
func NewEngine(cfg config.TetrisConfig, rng Randomizer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("tetris: nil randomizer")
	}

	e := &Engine{
		cfg:  cfg,
		rng:  rng,
		grid: NewGrid(cfg.Board.Width, cfg.Board.Height),
	}
	e.Reset()
	return e, nil
}

// Reset empties the grid, draws new pieces and restores every counter.
// It leaves the paused and game-over states.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.current = Spawn(e.rng, e.grid.Width())
	e.next = Spawn(e.rng, e.grid.Width())
	e.score = 0
	e.lines = 0
	e.level = e.cfg.Levels.LevelFor(0)
	e.fallInterval = e.cfg.Speed.FallInterval(e.level)
	e.lastCleared = 0
	e.pieces = 0
	e.paused = false
	e.gameOver = false
	e.lastFall = e.now
}

// IsValidPosition reports whether shape anchored at (x, y) stays within the
// side walls and floor without overlapping locked cells. Cells above the
// board (row < 0) only need a valid column.
func (e *Engine) IsValidPosition(shape Shape, x, y int) bool {
	for i, row := range shape {
		for j, filled := range row {
			if !filled {
				continue
			}
			col, r := x+j, y+i
			if col < 0 || col >= e.grid.Width() || r >= e.grid.Height() {
				return false
			}
			if r >= 0 && e.grid.Occupied(col, r) {
				return false
			}
		}
	}
	return true
}

// active reports whether movement commands are accepted.
func (e *Engine) active() bool {
	return !e.paused && !e.gameOver
}

// MoveLeft shifts the falling piece one column left if possible.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the falling piece one column right if possible.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if !e.active() {
		return false
	}
	if !e.IsValidPosition(e.current.Shape, e.current.X+dx, e.current.Y) {
		return false
	}
	e.current.X += dx
	return true
}

// MoveDown advances the falling piece one row. When the piece cannot move it
// is locked: merged into the grid, full rows are cleared, the queued piece
// takes its place and a new one is queued. Returns true when a lock happened.
// If the promoted piece does not fit at its spawn position the game is over.
func (e *Engine) MoveDown() (locked bool) {
	if !e.active() {
		return false
	}

	if e.IsValidPosition(e.current.Shape, e.current.X, e.current.Y+1) {
		e.current.Y++
		return false
	}

	e.merge()
	e.pieces++
	e.applyClear(e.grid.ClearFullRows())

	e.current = e.next
	e.next = Spawn(e.rng, e.grid.Width())
	if !e.IsValidPosition(e.current.Shape, e.current.X, e.current.Y) {
		e.gameOver = true
	}
	return true
}

// HardDrop drops the falling piece to its resting row and locks it.
func (e *Engine) HardDrop() bool {
	if !e.active() {
		return false
	}
	for !e.MoveDown() {
	}
	return true
}

// Rotate turns the falling piece clockwise if the rotated shape fits at the
// current anchor. There is no kick search.
func (e *Engine) Rotate() bool {
	if !e.active() {
		return false
	}
	rotated := e.current.RotatedShape()
	if !e.IsValidPosition(rotated, e.current.X, e.current.Y) {
		return false
	}
	e.current.Shape = rotated
	return true
}

// TogglePause switches between running and paused. No effect after game over.
func (e *Engine) TogglePause() {
	if e.gameOver {
		return
	}
	e.paused = !e.paused
}

// Tick is the gravity driver. now is a monotonic clock in milliseconds. When
// more than one fall interval has passed since the last automatic fall the
// piece steps down and the timer restarts. Time spent paused or over does not
// accumulate. Returns true when gravity fired.
func (e *Engine) Tick(now int64) bool {
	e.now = now
	if !e.active() {
		e.lastFall = now
		return false
	}
	if now-e.lastFall <= e.fallInterval.Milliseconds() {
		return false
	}
	e.MoveDown()
	e.lastFall = now
	return true
}

// SetClock restarts the gravity timer at now. Used when the caller's clock
// starts over.
func (e *Engine) SetClock(now int64) {
	e.now = now
	e.lastFall = now
}

// merge writes the falling piece's on-board cells into the grid.
func (e *Engine) merge() {
	e.current.Cells(func(x, y int) {
		if y >= 0 {
			e.grid.Set(x, y, e.current.Color)
		}
	})
}

// applyClear updates score, lines, level and speed after n rows were removed.
func (e *Engine) applyClear(n int) {
	e.lastCleared = n
	if n <= 0 {
		return
	}
	e.score += e.cfg.Scoring.Award(n, e.level)
	e.lines += n
	e.level = e.cfg.Levels.LevelFor(e.lines)
	e.fallInterval = e.cfg.Speed.FallInterval(e.level)
}

// Status returns the state machine position.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case e.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Width returns the board width in cells.
func (e *Engine) Width() int { return e.grid.Width() }

// Height returns the board height in cells.
func (e *Engine) Height() int { return e.grid.Height() }

// Cell returns the locked color at (x, y); ColorDefault means empty.
func (e *Engine) Cell(x, y int) core.Color { return e.grid.At(x, y) }

// Grid returns a copy of the locked cells.
func (e *Engine) Grid() [][]core.Color { return e.grid.Rows() }

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece { return e.current.Clone() }

// Next returns a copy of the queued piece.
func (e *Engine) Next() Piece { return e.next.Clone() }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the cumulative number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// LastCleared returns the number of rows removed by the most recent lock.
func (e *Engine) LastCleared() int { return e.lastCleared }

// Pieces returns the number of pieces locked this session.
func (e *Engine) Pieces() int { return e.pieces }

// FallInterval returns the current gravity interval.
func (e *Engine) FallInterval() time.Duration { return e.fallInterval }

// Paused reports whether the session is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }
