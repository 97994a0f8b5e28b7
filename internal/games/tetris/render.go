package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Each board cell is drawn two characters wide
	panelGap   = 2  // Space between board and side panel
	panelWidth = 16 // Side panel width
	previewW   = 4  // Preview box interior in cells
	previewH   = 2
)

var (
	blockRunes = [cellWidth]rune{'█', '█'}
	emptyRunes = [cellWidth]rune{' ', '·'}
)

// layoutSize returns the minimum screen size needed to draw the game.
func (g *Game) layoutSize() (int, int) {
	boardW := g.engine.Width()*cellWidth + 2
	boardH := g.engine.Height() + 2
	return boardW + panelGap + panelWidth, boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, totalH := g.layoutSize()
	board := core.NewRect(
		core.Clamp((g.screenW-totalW)/2, 0, g.screenW),
		core.Clamp((g.screenH-totalH)/2, 0, g.screenH),
		g.engine.Width()*cellWidth+2,
		g.engine.Height()+2,
	)

	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, board.Y)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", minW, minH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the well, the locked cells and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board)

	for y := 0; y < g.engine.Height(); y++ {
		for x := 0; x < g.engine.Width(); x++ {
			c := g.engine.Cell(x, y)
			if c.IsEmpty() {
				drawCell(dst, board, x, y, emptyRunes, core.ColorGray)
			} else {
				drawCell(dst, board, x, y, blockRunes, c)
			}
		}
	}

	if g.engine.GameOver() {
		return
	}
	cur := g.engine.Current()
	cur.Cells(func(x, y int) {
		if y >= 0 {
			drawCell(dst, board, x, y, blockRunes, cur.Color)
		}
	})
}

// drawCell draws one board cell inside the well border.
func drawCell(dst *core.Screen, board core.Rect, x, y int, runes [cellWidth]rune, c core.Color) {
	px := board.X + 1 + x*cellWidth
	py := board.Y + 1 + y
	for i, r := range runes {
		dst.SetColored(px+i, py, r, c)
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	dst.DrawText(px, py, "NEXT")
	preview := core.NewRect(px, py+1, previewW*cellWidth+2, previewH+2)
	dst.DrawBox(preview)

	next := g.engine.Next()
	for i, row := range next.Shape {
		for j, filled := range row {
			if filled {
				drawCell(dst, preview, j, i, blockRunes, next.Color)
			}
		}
	}

	y := preview.Bottom() + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", g.DisplayScore())},
		{"LEVEL", fmt.Sprintf("%d", g.engine.Level())},
		{"LINES", fmt.Sprintf("%d", g.engine.Lines())},
		{"SPEED", fmt.Sprintf("%dms", g.engine.FallInterval().Milliseconds())},
	}
	for _, s := range stats {
		dst.DrawTextColored(px, y, s.label, core.ColorGray)
		dst.DrawTextColored(px, y+1, s.value, core.ColorBrightWhite)
		y += 3
	}

	if label := clearLabel(g.engine.LastCleared()); label != "" {
		dst.DrawTextColored(px, y, label, core.ColorBrightYellow)
	}
}

// clearLabel names the most recent multi-row clear; empty when nothing was cleared.
func clearLabel(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "SINGLE"
	case n == 2:
		return "DOUBLE"
	case n == 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch g.engine.Status() {
	case StatusPaused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case StatusGameOver:
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score()), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
