package tetris

import "strings"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Current  Kind
	CurrentX int
	CurrentY int
	Rotation string // Current shape as rendered by Shape.String
	Next     Kind
	Stack    []string // Locked cells per row, '#' occupied and '.' empty
	State    Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	cur := e.Current()

	rows := e.Grid()
	stack := make([]string, len(rows))
	for y, row := range rows {
		var b strings.Builder
		for _, c := range row {
			if c.IsEmpty() {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		stack[y] = b.String()
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    e.Score(),
		Level:    e.Level(),
		Lines:    e.Lines(),
		Pieces:   e.Pieces(),
		Current:  cur.Kind,
		CurrentX: cur.X,
		CurrentY: cur.Y,
		Rotation: cur.Shape.String(),
		Next:     e.Next().Kind,
		Stack:    stack,
		State:    e.Status(),
	}
}
