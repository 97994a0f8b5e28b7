// Package config provides YAML-based configuration loading for the game and
// the progression rules (scoring, levels, fall speed) derived from it.
package config

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest width and height that can hold every
// tetromino in every orientation.
const MinBoardSize = 4

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  LevelConfig   `yaml:"levels"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines base points per number of rows cleared at once.
// LineScores[0] is for a single, LineScores[3] for four rows.
type ScoringConfig struct {
	LineScores []int `yaml:"line_scores"`
}

// LevelConfig defines how cleared lines map to levels.
type LevelConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// SpeedConfig defines the gravity interval curve.
type SpeedConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Interval at level 1
	StepMs         int `yaml:"step_ms"`          // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Hard floor
}

// Validate reports the first problem found in the configuration.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Height < MinBoardSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, MinBoardSize, MinBoardSize)
	}
	if len(c.Scoring.LineScores) == 0 {
		return fmt.Errorf("%w: scoring.line_scores is empty", ErrInvalidConfig)
	}
	for i, s := range c.Scoring.LineScores {
		if s < 0 {
			return fmt.Errorf("%w: scoring.line_scores[%d] is negative (%d)", ErrInvalidConfig, i, s)
		}
	}
	if c.Levels.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: levels.lines_per_level must be positive, got %d",
			ErrInvalidConfig, c.Levels.LinesPerLevel)
	}
	if c.Speed.MinIntervalMs <= 0 {
		return fmt.Errorf("%w: speed.min_interval_ms must be positive, got %d",
			ErrInvalidConfig, c.Speed.MinIntervalMs)
	}
	if c.Speed.BaseIntervalMs < c.Speed.MinIntervalMs {
		return fmt.Errorf("%w: speed.base_interval_ms (%d) is below speed.min_interval_ms (%d)",
			ErrInvalidConfig, c.Speed.BaseIntervalMs, c.Speed.MinIntervalMs)
	}
	if c.Speed.StepMs < 0 {
		return fmt.Errorf("%w: speed.step_ms must not be negative, got %d", ErrInvalidConfig, c.Speed.StepMs)
	}
	return nil
}
