package board

import "testing"

func TestSolveFindsSingleMark(t *testing.T) {
	level := testLevel(1, 1, 1, 2, 0, 0, 0, 0, 0, 0)

	sol, ok := Solve(level)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(sol.Steps) != 1 {
		t.Fatalf("got %d steps, want 1: %+v", len(sol.Steps), sol.Steps)
	}
	if sol.Steps[0] != (Step{Cell: 2, Mark: MarkMinus}) {
		t.Errorf("step = %+v, want minus on cell 2", sol.Steps[0])
	}
}

func TestSolveStepsReplayToWin(t *testing.T) {
	level := testLevel(2, 3, 3, 2, 3, 0, 0, 4, 0, 0)

	sol, ok := Solve(level)
	if !ok {
		t.Fatal("expected a solution")
	}

	b := newBoard(t, level)
	for _, s := range sol.Steps {
		if !b.RequestMark(s.Cell, s.Mark) {
			t.Fatalf("step %+v was rejected", s)
		}
	}
	if b.Remaining() > level.Par {
		t.Errorf("Remaining() = %d exceeds par %d", b.Remaining(), level.Par)
	}
	if res := b.Resolve(); res.Verdict != Win {
		t.Errorf("replayed solution lost")
	}
}

func TestSolveSwitchesInitialMark(t *testing.T) {
	level := testLevel(0, 1, 1, 2, 0, 0, 0, 0, 0, 0)
	level.Marks[2] = MarkPlus

	sol, ok := Solve(level)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(sol.Steps) != 1 || sol.Steps[0] != (Step{Cell: 2, Mark: MarkMinus}) {
		t.Errorf("steps = %+v, want a single switch to minus on cell 2", sol.Steps)
	}
}

func TestSolveRespectsPar(t *testing.T) {
	// Already solved without marks, but par 0 forces the single mark to be spent.
	level := testLevel(1, 1, 1, 1, 0, 0, 0, 0, 0, 0)

	sol, ok := Solve(level)
	if ok {
		t.Errorf("expected no solution, got %+v", sol)
	}

	level.Par = 1
	if _, ok := Solve(level); !ok {
		t.Error("with par 1 the empty layout should win")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	level := testLevel(0, 1, 2, 3, 0, 0, 0, 0, 0, 0)

	if _, ok := Solve(level); ok {
		t.Error("expected no solution without any budget")
	}
}

func TestSnapshotAsLevel(t *testing.T) {
	level := testLevel(2, 1, 2, 2, 0, 0, 0, 0, 0, 0)
	b := newBoard(t, level)
	b.RequestMark(0, MarkPlus)

	resumed := b.Snapshot().AsLevel(1)

	if resumed.MoveBudget != 1 {
		t.Errorf("MoveBudget = %d, want 1", resumed.MoveBudget)
	}
	if resumed.Marks[0] != MarkPlus {
		t.Errorf("Marks[0] = %v, want plus", resumed.Marks[0])
	}
	sol, ok := Solve(resumed)
	if !ok {
		t.Fatal("expected the resumed position to be solvable")
	}
	if sol.Changes != 0 {
		t.Errorf("Changes = %d, want 0 since the current marks already win", sol.Changes)
	}
}
