package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration: a 10x20 board,
// 100/300/500/800 line scores, a new level every 10 lines and a gravity
// interval starting at 500ms and shrinking by 50ms per level down to 50ms.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			LineScores: []int{100, 300, 500, 800},
		},
		Levels: LevelConfig{
			LinesPerLevel: 10,
		},
		Speed: SpeedConfig{
			BaseIntervalMs: 500,
			StepMs:         50,
			MinIntervalMs:  50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
