package tileshift

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
	"github.com/vovakirdan/tileshift/internal/registry"
)

const (
	testW = 80
	testH = 30
)

// writeConfig writes a config file that overrides the settle delay.
func writeConfig(t *testing.T, settle int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tileshift.yaml")
	data := "timing:\n  settle_ticks: " + strconv.Itoa(settle) + "\n  hint_ticks: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newTestGame(t *testing.T, mode Mode, s Settings) *Game {
	t.Helper()
	if s.ConfigPath == "" {
		s.ConfigPath = writeConfig(t, 0)
	}
	g := NewWithSettings(mode, s)
	g.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH, TickRate: 30, Seed: 7})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func click(x, y int, b core.MouseButton) core.InputFrame {
	f := core.NewInputFrame()
	f.Click(x, y, b)
	return f
}

// solve applies the solver's steps for the current position.
func solve(t *testing.T, g *Game) {
	t.Helper()
	sol, ok := board.Solve(g.Board().AsLevel(g.Level().Par))
	if !ok {
		t.Fatalf("level %s has no solution", g.Level().ID)
	}
	for _, s := range sol.Steps {
		g.mark(s.Cell, s.Mark)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDRandom} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestCampaignFirstLevel(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	if g.Level().ID != "lvl01" {
		t.Fatalf("first level = %q, want lvl01", g.Level().ID)
	}
	if g.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", g.Cursor())
	}

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionMarkMinus))
	if m := g.Board().Cells[2].Mark; m != board.MarkMinus {
		t.Fatalf("cell 2 mark = %v, want minus", m)
	}
	if !g.CanResolve() {
		t.Fatal("resolve should be offered once the budget is spent")
	}

	res := g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 1 {
		t.Fatalf("outcomes = %d, want 1", len(res.Outcomes))
	}
	out := res.Outcomes[0]
	if !out.Won || out.LevelID != "lvl01" || out.Number != 1 || out.MarksUsed != 1 {
		t.Errorf("outcome = %+v", out)
	}
	if g.phase != phaseWon {
		t.Fatalf("phase = %v, want won", g.phase)
	}
	if res.State.Score != 100 {
		t.Errorf("score = %d, want 100", res.State.Score)
	}

	res = g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 0 {
		t.Error("outcomes should only be reported on the resolving tick")
	}
	if g.Level().ID != "lvl02" {
		t.Errorf("after advance level = %q, want lvl02", g.Level().ID)
	}
	if g.phase != phasePlaying {
		t.Errorf("phase = %v, want playing", g.phase)
	}
}

func TestResolveGatedByPar(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	if g.CanResolve() {
		t.Fatal("resolve offered with unused budget above par")
	}
	res := g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 0 {
		t.Error("gated resolve must not produce an outcome")
	}
	if g.phase != phasePlaying {
		t.Errorf("phase = %v, want playing", g.phase)
	}
	if !strings.Contains(g.message, "1 more") {
		t.Errorf("message = %q", g.message)
	}
}

func TestSpareMovesWithinPar(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{StartLevel: 11})
	if g.Level().ID != "lvl11" {
		t.Fatalf("level = %q, want lvl11", g.Level().ID)
	}
	if g.CanResolve() {
		t.Fatal("two unused marks exceed par 1")
	}
	solve(t, g)
	if g.Board().Remaining != 1 {
		t.Fatalf("remaining = %d, want 1 spare", g.Board().Remaining)
	}
	if !g.CanResolve() {
		t.Fatal("one spare mark is within par")
	}
	res := g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 1 || !res.Outcomes[0].Won {
		t.Fatalf("outcomes = %+v", res.Outcomes)
	}
}

func TestLossAndRetry(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.Step(frame(core.ActionMarkPlus)) // cell 0: 1 -> 2
	res := g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 1 || res.Outcomes[0].Won {
		t.Fatalf("outcomes = %+v, want one loss", res.Outcomes)
	}
	if g.phase != phaseLost {
		t.Fatalf("phase = %v, want lost", g.phase)
	}

	g.Step(frame(core.ActionRestart))
	if g.phase != phasePlaying {
		t.Fatalf("phase = %v, want playing", g.phase)
	}
	if g.retries != 1 {
		t.Errorf("retries = %d, want 1", g.retries)
	}
	snap := g.Board()
	if snap.Remaining != 1 || snap.Cells[0].Value != 1 || snap.Cells[0].Marked() {
		t.Errorf("board not reset: %+v", snap)
	}

	g.mark(2, board.MarkMinus)
	res = g.Step(frame(core.ActionConfirm))
	if res.State.Score != 90 {
		t.Errorf("score after one retry = %d, want 90", res.State.Score)
	}
}

func TestSettleDelay(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{ConfigPath: writeConfig(t, 5)})

	g.mark(2, board.MarkMinus)
	g.Step(frame(core.ActionConfirm))
	if g.phase != phaseSettling {
		t.Fatalf("phase = %v, want settling", g.phase)
	}
	if g.particles.Len() == 0 {
		t.Error("apply effects should spawn particles immediately")
	}

	// Input is ignored while settling.
	g.Step(frame(core.ActionRestart))
	for range 3 {
		g.Step(core.NewInputFrame())
	}
	if g.phase != phaseSettling {
		t.Fatalf("settled too early: phase = %v", g.phase)
	}
	g.Step(core.NewInputFrame())
	if g.phase != phaseWon {
		t.Errorf("phase = %v, want won", g.phase)
	}
}

func TestHint(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.Step(frame(core.ActionHint))
	if g.hint != 2 || g.hintMark != board.MarkMinus {
		t.Fatalf("hint = %d %v, want cell 2 minus", g.hint, g.hintMark)
	}
	if !strings.Contains(g.message, "row 1, column 3") {
		t.Errorf("message = %q", g.message)
	}

	// Following the hint clears it.
	g.mark(2, board.MarkMinus)
	if g.hint != -1 {
		t.Errorf("hint = %d after following it", g.hint)
	}

	g.Step(frame(core.ActionHint))
	if g.message != "Resolve now!" {
		t.Errorf("message = %q", g.message)
	}

	scr := core.NewScreen(testW, testH)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Hints: 2") {
		t.Error("hint count missing from the HUD")
	}
}

func TestHintCountResetsPerLevel(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.Step(frame(core.ActionHint))
	g.mark(2, board.MarkMinus)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionConfirm))

	if g.Level().Number != 2 {
		t.Fatalf("level = %d, want 2", g.Level().Number)
	}
	if g.hints != 0 {
		t.Errorf("hints = %d on a fresh level, want 0", g.hints)
	}
}

func TestInvalidLevelStopsGame(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})
	before := g.Board()

	g.level.MoveBudget = -5
	g.level.Values[1] = -3
	g.startAttempt()

	if g.Err() == nil {
		t.Fatal("an invalid level must surface as an error")
	}
	if !g.State().GameOver {
		t.Error("game should stop on an invalid level")
	}
	if g.Board() != before {
		t.Error("board changed despite the rejected level")
	}
}

func TestHintExpires(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.Step(frame(core.ActionHint))
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.hint != -1 {
		t.Errorf("hint = %d, want expired", g.hint)
	}
}

func TestMouseMarks(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	x, y := g.layout.tiles[2].Center()
	g.Step(click(x, y, core.MouseRight))
	if m := g.Board().Cells[2].Mark; m != board.MarkMinus {
		t.Fatalf("right click mark = %v, want minus", m)
	}
	if g.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", g.Cursor())
	}

	// Left click switches to plus without spending budget.
	g.Step(click(x, y, core.MouseLeft))
	snap := g.Board()
	if snap.Cells[2].Mark != board.MarkPlus || snap.Remaining != 0 {
		t.Errorf("after left click: mark %v remaining %d", snap.Cells[2].Mark, snap.Remaining)
	}

	// Empty cell.
	x, y = g.layout.tiles[4].Center()
	g.Step(click(x, y, core.MouseLeft))
	if g.message != "Nothing to shift there" {
		t.Errorf("message = %q", g.message)
	}

	// Outside the grid.
	g.Step(click(0, 0, core.MouseLeft))
	if g.Cursor() != 4 {
		t.Errorf("cursor moved by a miss: %d", g.Cursor())
	}
}

func TestBudgetExhaustedMessage(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.mark(0, board.MarkPlus)
	g.mark(1, board.MarkPlus)
	if g.message != "No marks left" {
		t.Errorf("message = %q", g.message)
	}
	if g.Board().Cells[1].Marked() {
		t.Error("mark accepted with an empty budget")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.mark(2, board.MarkMinus)
	g.Resize(120, 40)
	if !g.Board().Cells[2].Marked() {
		t.Fatal("resize reset the board")
	}

	g.Resize(20, 8)
	if !g.State().Paused {
		t.Error("too small screen should pause")
	}
	g.Step(frame(core.ActionConfirm))
	if g.phase != phasePlaying {
		t.Error("input handled while too small")
	}

	g.Resize(testW, testH)
	g.Step(frame(core.ActionConfirm))
	if g.phase != phaseWon {
		t.Errorf("phase = %v, want won", g.phase)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(frame(core.ActionMarkPlus))
	if g.Board().Cells[0].Marked() {
		t.Error("mark accepted while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestCampaignFinished(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{StartLevel: 99})

	if g.Level().ID != "lvl13" {
		t.Fatalf("level = %q, want the last one", g.Level().ID)
	}
	solve(t, g)
	res := g.Step(frame(core.ActionConfirm))
	if !res.State.GameOver {
		t.Fatal("winning the last level should end the game")
	}
	if g.phase != phaseFinished {
		t.Errorf("phase = %v, want finished", g.phase)
	}
}

func TestRandomMode(t *testing.T) {
	g := newTestGame(t, ModeRandom, Settings{})

	if g.ID() != IDRandom {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Level().ID != "rnd0001" {
		t.Fatalf("level = %q, want rnd0001", g.Level().ID)
	}

	solve(t, g)
	res := g.Step(frame(core.ActionConfirm))
	if len(res.Outcomes) != 1 || !res.Outcomes[0].Won {
		t.Fatalf("outcomes = %+v", res.Outcomes)
	}
	g.Step(frame(core.ActionConfirm))
	if g.Level().ID != "rnd0002" {
		t.Errorf("level = %q, want rnd0002", g.Level().ID)
	}
	if g.State().GameOver {
		t.Error("random mode never ends")
	}
}

func TestRandomModeDeterministic(t *testing.T) {
	a := newTestGame(t, ModeRandom, Settings{})
	b := newTestGame(t, ModeRandom, Settings{})
	if a.Level().Values != b.Level().Values || a.Level().Marks != b.Level().Marks {
		t.Error("same seed produced different puzzles")
	}
}

func TestInvalidLevelDirFails(t *testing.T) {
	dir := t.TempDir()
	good := "id: ok\nnumber: 1\nvalues: [1, 1, 2, 0, 0, 0, 0, 0, 0]\nmoves: 1\n"
	bad := "id: bad\nnumber: 2\nvalues: [1, 2]\nmoves: 1\n"
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	g := NewWithSettings(ModeCampaign, Settings{ConfigPath: writeConfig(t, 0), LevelsDir: dir})
	g.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH})
	if g.Err() == nil {
		t.Fatal("expected a load error")
	}
	if !g.State().GameOver {
		t.Error("load error should end the game")
	}

	scr := core.NewScreen(testW, testH)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Cannot start TileShift") {
		t.Error("error screen not rendered")
	}
}

func TestEmptyLevelDirFails(t *testing.T) {
	g := NewWithSettings(ModeCampaign, Settings{ConfigPath: writeConfig(t, 0), LevelsDir: t.TempDir()})
	g.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH})
	if g.Err() == nil {
		t.Fatal("expected an error for an empty level directory")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign, Settings{})
	scr := core.NewScreen(testW, testH)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Even Out", "Marks left: 1", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "[Enter] Resolve") {
		t.Error("resolve control shown before par is met")
	}

	g.mark(2, board.MarkMinus)
	g.Render(scr)
	out = scr.String()
	if !strings.Contains(out, "2→1") {
		t.Error("mark preview missing")
	}
	if !strings.Contains(out, "[Enter] Resolve") {
		t.Error("resolve control missing")
	}

	g.Resize(20, 8)
	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("too-small message missing")
	}
}
