package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 600; i++ {
		var in core.InputFrame
		switch i % 40 {
		case 5:
			in = frame(core.ActionLeft, core.ActionLeft)
		case 10:
			in = frame(core.ActionRotate)
		case 20:
			in = frame(core.ActionRight)
		case 30:
			in = frame(core.ActionHardDrop)
		default:
			in = frame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score || snap1.Pieces != snap2.Pieces {
		t.Errorf("Counters mismatch: score %d vs %d, pieces %d vs %d",
			snap1.Score, snap2.Score, snap1.Pieces, snap2.Pieces)
	}
	if snap1.Current != snap2.Current || snap1.Next != snap2.Next {
		t.Errorf("Piece mismatch: %s/%s vs %s/%s", snap1.Current, snap1.Next, snap2.Current, snap2.Next)
	}
	if snap1.CurrentX != snap2.CurrentX || snap1.CurrentY != snap2.CurrentY || snap1.Rotation != snap2.Rotation {
		t.Errorf("Position mismatch: (%d,%d,%s) vs (%d,%d,%s)",
			snap1.CurrentX, snap1.CurrentY, snap1.Rotation, snap2.CurrentX, snap2.CurrentY, snap2.Rotation)
	}
	if strings.Join(snap1.Stack, "\n") != strings.Join(snap2.Stack, "\n") {
		t.Errorf("Stack mismatch:\n%s\nvs\n%s", strings.Join(snap1.Stack, "\n"), strings.Join(snap2.Stack, "\n"))
	}
	if snap1.Pieces == 0 {
		t.Error("expected some pieces to lock during the run")
	}
}

func TestResetReplaysSameSequence(t *testing.T) {
	g := newTestGame(t, 7)
	first := g.Snapshot()

	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24, TickRate: 60})

	again := g.Snapshot()
	if again.Current != first.Current || again.Next != first.Next {
		t.Errorf("pieces after Reset = %s/%s, want %s/%s", again.Current, again.Next, first.Current, first.Next)
	}
	if again.Tick != 0 || again.Pieces != 0 {
		t.Errorf("tick=%d pieces=%d after Reset, want 0", again.Tick, again.Pieces)
	}
}

func TestGravityAtTickRate(t *testing.T) {
	g := newTestGame(t, 1)

	// 500ms at 60 ticks/s is 30 ticks; the fall needs strictly more.
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if y := g.Snapshot().CurrentY; y != 0 {
		t.Errorf("Y after 30 ticks = %d, want 0", y)
	}

	g.Step(frame())
	if y := g.Snapshot().CurrentY; y != 1 {
		t.Errorf("Y after 31 ticks = %d, want 1", y)
	}
}

func TestActionsAppliedInOrder(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionLeft, core.ActionLeft))
	if x := g.Snapshot().CurrentX; x != 1 {
		t.Errorf("X after two lefts = %d, want 1", x)
	}

	g.Step(frame(core.ActionRight, core.ActionRight, core.ActionRight))
	if x := g.Snapshot().CurrentX; x != 4 {
		t.Errorf("X after three rights = %d, want 4", x)
	}
}

func TestHardDropReportsLock(t *testing.T) {
	g := newTestGame(t, 3)

	res := g.Step(frame(core.ActionHardDrop))
	if !res.Locked {
		t.Error("StepResult.Locked = false after hard drop")
	}

	res = g.Step(frame())
	if res.Locked {
		t.Error("StepResult.Locked = true on an idle tick")
	}
}

func TestPauseAction(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for i := 0; i < 120; i++ {
		g.Step(frame(core.ActionLeft))
	}
	snap := g.Snapshot()
	if snap.CurrentY != 0 || snap.CurrentX != 3 {
		t.Errorf("piece moved to (%d,%d) while paused", snap.CurrentX, snap.CurrentY)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("expected running state after second pause")
	}
}

func TestRestartAction(t *testing.T) {
	g := newTestGame(t, 9)
	for i := 0; i < 4; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	g.engine.score = 500
	g.engine.gameOver = true

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v, want fresh game", res.State)
	}
	if res.Locked {
		t.Error("restart reported a lock")
	}
	if g.Snapshot().Pieces != 0 {
		t.Errorf("Pieces = %d after restart, want 0", g.Snapshot().Pieces)
	}
	if g.DisplayScore() != 0 {
		t.Errorf("DisplayScore = %d after restart, want 0", g.DisplayScore())
	}
}

func TestScoreRollUp(t *testing.T) {
	g := newTestGame(t, 1)
	g.engine.score = 800

	g.Step(frame())
	if s := g.DisplayScore(); s <= 0 || s >= 800 {
		t.Errorf("DisplayScore after one tick = %d, want between 0 and 800", s)
	}

	for i := 0; i < 40; i++ {
		g.Step(frame())
	}
	if s := g.DisplayScore(); s != 800 {
		t.Errorf("DisplayScore after roll-up = %d, want 800", s)
	}
	if g.State().Score != 800 {
		t.Errorf("State().Score = %d, want 800", g.State().Score)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g, err := New(config.DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.State().Paused {
		t.Error("small screen should report paused")
	}
	for i := 0; i < 600; i++ {
		g.Step(frame(core.ActionLeft))
	}
	if g.Snapshot().CurrentX != 3 {
		t.Error("piece moved while the screen was too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a large screen should resume")
	}

	// Gravity restarts from the resume point: 500ms at 60 ticks/s is 30 ticks.
	startY := g.Snapshot().CurrentY
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if y := g.Snapshot().CurrentY; y != startY {
		t.Errorf("CurrentY after 30 ticks = %d, want %d", y, startY)
	}
	g.Step(frame())
	if y := g.Snapshot().CurrentY; y != startY+1 {
		t.Errorf("CurrentY after 31 ticks = %d, want %d", y, startY+1)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"NEXT", "SCORE", "LEVEL", "LINES", "500ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("render missing PAUSED overlay")
	}

	g.Step(frame(core.ActionPause))
	g.engine.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("render missing GAME OVER overlay")
	}
}

func TestRenderDrawsLockedCells(t *testing.T) {
	g := newTestGame(t, 1)
	g.engine.grid.Set(0, g.engine.Height()-1, core.ColorRed)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	w, h := g.layoutSize()
	boardX := (80 - w) / 2
	boardY := (24 - h) / 2
	cell := screen.GetCell(boardX+1, boardY+g.engine.Height())
	if cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("bottom-left cell = %q/%v, want red block", cell.Rune, cell.Color)
	}
}

func TestRenderClearLabel(t *testing.T) {
	g := newTestGame(t, 1)
	e := g.engine
	for y := e.Height() - 2; y < e.Height(); y++ {
		fillRow(e.grid, y, core.ColorGray, 0)
	}
	e.current = verticalI(e, 0)
	e.MoveDown()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "DOUBLE") {
		t.Error("render missing DOUBLE after a two-row clear")
	}
}
