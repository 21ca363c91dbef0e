package game

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/twenty48/internal/board"
	"github.com/vovakirdan/twenty48/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// restoreOptions resets the package-level session options after a test.
func restoreOptions(t *testing.T) {
	t.Cleanup(func() {
		selectedBoardSize = board.DefaultSize
		selectedWinTarget = DefaultWinTarget
		selectedStartState = ""
	})
}

// encode builds a state string for an explicit grid.
func encode(grid [][]int) string {
	var sb strings.Builder
	for _, row := range grid {
		for _, v := range row {
			fmt.Fprintf(&sb, "%02d", v)
		}
	}
	return sb.String()
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	restoreOptions(t)

	g := New()
	g.Reset(testConfig())

	snap := g.Snapshot()
	tiles := 0
	for _, row := range snap.Grid {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("fresh game has %d tiles, expected 2", tiles)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, expected %q", snap.State, StatePlaying)
	}
}

func TestStepProcessesMove(t *testing.T) {
	restoreOptions(t)

	SetStartState(encode([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))
	g := New()
	g.Reset(testConfig())

	result := g.Step(frame(core.ActionLeft))

	// 2+2 merged plus a spawned tile.
	if result.State.Score != 4+2 && result.State.Score != 4+4 {
		t.Errorf("Score = %d, expected merged 4 plus a spawned 2 or 4", result.State.Score)
	}
	if got := g.Snapshot().Grid[0][0]; got != 4 {
		t.Errorf("grid[0][0] = %d, expected merged 4", got)
	}
}

func TestStepIgnoresIllegalMove(t *testing.T) {
	restoreOptions(t)

	SetStartState(encode([][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))
	g := New()
	g.Reset(testConfig())

	before := g.Snapshot()
	g.Step(frame(core.ActionUp)) // Already compacted upward; illegal.
	after := g.Snapshot()

	if !reflect.DeepEqual(before.Grid, after.Grid) {
		t.Error("illegal move changed the grid")
	}
	if before.Score != after.Score {
		t.Errorf("illegal move changed score: %d -> %d", before.Score, after.Score)
	}
}

func TestDeterministicReplay(t *testing.T) {
	restoreOptions(t)

	inputs := []core.Action{
		core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown,
		core.ActionLeft, core.ActionLeft, core.ActionUp, core.ActionRight,
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for _, a := range inputs {
			g.Step(frame(a))
		}
		return g.Snapshot()
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed and inputs produced different snapshots:\n%+v\n%+v", first, second)
	}
}

func TestGameOverFromLoadedState(t *testing.T) {
	restoreOptions(t)

	SetStartState(encode([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}))
	g := New()
	g.Reset(testConfig())

	if !g.State().GameOver {
		t.Error("expected GameOver on a terminal start state")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot.State = %q, expected %q", g.Snapshot().State, StateGameOver)
	}

	// Moves are ignored once the game is over.
	before := g.Snapshot()
	g.Step(frame(core.ActionLeft))
	if !reflect.DeepEqual(before.Grid, g.Snapshot().Grid) {
		t.Error("Step changed the grid after game over")
	}
}

func TestWinBannerKeepsPlaying(t *testing.T) {
	restoreOptions(t)

	SetWinTarget(128)
	SetStartState(encode([][]int{
		{64, 0, 0, 0},
		{64, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))
	g := New()
	g.Reset(testConfig())

	if g.Won() {
		t.Fatal("Won() = true before reaching the target")
	}

	g.Step(frame(core.ActionUp))

	if !g.Won() {
		t.Error("Won() = false after merging to the target tile")
	}
	if g.State().GameOver {
		t.Error("reaching the target must not end the game")
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot.State = %q, expected %q", g.Snapshot().State, StateWon)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	restoreOptions(t)

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected Paused after pause action")
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft))
	if !reflect.DeepEqual(before.Grid, g.Snapshot().Grid) {
		t.Error("move processed while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused after second pause action")
	}
}

func TestTooSmallWindow(t *testing.T) {
	restoreOptions(t)

	cfg := testConfig()
	cfg.ScreenW = 10
	cfg.ScreenH = 5

	g := New()
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("expected Paused state for a too-small window")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot.State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft))
	if !reflect.DeepEqual(before.Grid, g.Snapshot().Grid) {
		t.Error("move processed while the window is too small")
	}
}

func TestStartStateConsumedOnce(t *testing.T) {
	restoreOptions(t)

	terminal := encode([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	SetStartState(terminal)
	g := New()
	g.Reset(testConfig())
	if !g.State().GameOver {
		t.Fatal("first Reset should load the terminal start state")
	}

	// A restart after game over starts fresh.
	g.Reset(testConfig())
	if g.State().GameOver {
		t.Error("second Reset reused the consumed start state")
	}
}

func TestStateStringRoundTripThroughSession(t *testing.T) {
	restoreOptions(t)

	start := encode([][]int{
		{2, 4, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 16, 0},
		{0, 0, 0, 0},
	})
	SetStartState(start)
	g := New()
	g.Reset(testConfig())

	encoded, err := g.StateString()
	if err != nil {
		t.Fatalf("StateString() failed: %v", err)
	}
	if encoded != start {
		t.Errorf("StateString() = %q, expected the loaded state %q", encoded, start)
	}
}

func TestRenderDrawsBoardAndHUD(t *testing.T) {
	restoreOptions(t)

	SetStartState(encode([][]int{
		{2, 0, 0, 0},
		{0, 32, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score:") {
		t.Error("render output missing score HUD")
	}
	if !strings.Contains(out, "32") {
		t.Error("render output missing tile value")
	}
	if !strings.Contains(out, "┌") {
		t.Error("render output missing grid border")
	}
}
