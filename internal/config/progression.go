package config

import "time"

// Award returns the points for clearing n rows at once on the given level.
// Counts beyond the table use its last entry.
func (s ScoringConfig) Award(n, level int) int {
	if n <= 0 || len(s.LineScores) == 0 {
		return 0
	}
	idx := n - 1
	if idx >= len(s.LineScores) {
		idx = len(s.LineScores) - 1
	}
	return s.LineScores[idx] * level
}

// LevelFor returns the level reached after clearing the given number of lines.
func (l LevelConfig) LevelFor(lines int) int {
	if l.LinesPerLevel <= 0 || lines < 0 {
		return 1
	}
	return lines/l.LinesPerLevel + 1
}

// FallInterval returns the gravity interval for a level:
// base - (level-1)*step, never below the floor.
func (s SpeedConfig) FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := s.BaseIntervalMs - (level-1)*s.StepMs
	if ms < s.MinIntervalMs {
		ms = s.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}
