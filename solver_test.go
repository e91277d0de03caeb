package ogear

import (
	"errors"
	"testing"
)

func mustState(t *testing.T, side int, axis Axis, tooth, polarity int) State {
	t.Helper()
	s, err := NewState(side, axis, tooth, polarity)
	if err != nil {
		t.Fatalf("NewState(%d, %s, %d, %d) failed: %v", side, axis, tooth, polarity, err)
	}
	return s
}

// checkLegalPath verifies every step of path is an edge the table
// actually lists for the state it was applied from, and that the replay
// ends at target.
func checkLegalPath(t *testing.T, table Table, origin, target State, path Path) {
	t.Helper()
	s := origin
	for i, step := range path {
		moves, ok := table.Moves(s.Pos)
		if !ok {
			t.Fatalf("step %d applied from undefined position %s", i+1, s.Pos)
		}
		legal := false
		for _, m := range moves {
			if m == step {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("step %d (%v) is not a legal move from %s", i+1, step, s.Pos)
		}
		s = s.Apply(step)
	}
	if s != target {
		t.Errorf("replay ended at %v, want %v", s, target)
	}
}

func TestSolveZeroLengthPath(t *testing.T) {
	s := mustState(t, 3, AxisY, 2, 1)
	path, err := Solve(s, s)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if path == nil {
		t.Fatal("want empty path, got nil")
	}
	if len(path) != 0 {
		t.Errorf("got %d steps, want 0", len(path))
	}
}

func TestSolveReferenceScenario(t *testing.T) {
	// The puzzle's own objective: from the boxed configuration, bring
	// tooth 4 inside side 6 along X with the gear facing away.
	origin := mustState(t, 1, AxisX, 0, 1)
	target := mustState(t, 6, AxisX, 4, -1)

	path, err := Solve(origin, target)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(path) != 16 {
		t.Errorf("got %d steps, want 16", len(path))
	}
	checkLegalPath(t, StandardTable, origin, target, path)
}

func TestSolveShortestLengths(t *testing.T) {
	// Lengths fixed by an exhaustive reference search over the table.
	origin := mustState(t, 1, AxisX, 0, 1)

	tests := []struct {
		name   string
		target State
		want   int
	}{
		{"single rotation", mustState(t, 1, AxisY, 0, -1), 1},
		{"single side change", mustState(t, 2, AxisX, 4, 1), 1},
		{"mid-range", mustState(t, 5, AxisZ, 0, 1), 9},
		{"polarity flip round trip", mustState(t, 1, AxisX, 0, -1), 12},
		{"far corner", mustState(t, 6, AxisY, 0, 1), 21},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := Solve(origin, tc.target)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if len(path) != tc.want {
				t.Errorf("got %d steps, want %d", len(path), tc.want)
			}
			checkLegalPath(t, StandardTable, origin, tc.target, path)
		})
	}
}

func TestSolveLengthIsDeterministic(t *testing.T) {
	origin := mustState(t, 1, AxisX, 0, 1)
	target := mustState(t, 6, AxisX, 4, -1)

	first, err := Solve(origin, target)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		path, err := Solve(origin, target)
		if err != nil {
			t.Fatalf("Solve failed on run %d: %v", i, err)
		}
		if len(path) != len(first) {
			t.Fatalf("run %d returned %d steps, first returned %d", i, len(path), len(first))
		}
	}
}

// countShorterPaths walks every legal move sequence of exactly depth
// moves from s and reports how many end at target. It shares nothing
// with the solver beyond the table and State.Apply.
func countShorterPaths(table Table, s, target State, depth int) int {
	if depth == 0 {
		if s == target {
			return 1
		}
		return 0
	}
	n := 0
	moves, _ := table.Moves(s.Pos)
	for _, m := range moves {
		n += countShorterPaths(table, s.Apply(m), target, depth-1)
	}
	return n
}

func TestSolveMinimality(t *testing.T) {
	origin := mustState(t, 1, AxisX, 0, 1)
	target := mustState(t, 5, AxisZ, 0, 1)

	path, err := Solve(origin, target)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// No strictly shorter sequence may reach the target.
	for depth := 0; depth < len(path); depth++ {
		if n := countShorterPaths(StandardTable, origin, target, depth); n != 0 {
			t.Errorf("found %d paths of length %d, solver returned %d steps", n, depth, len(path))
		}
	}
}

func TestSolveInvalidOriginPosition(t *testing.T) {
	// Structurally well-formed, but (2, Y) is not a position the gear
	// can occupy, so it has no table entry.
	origin := State{Pos: Position{Side: 2, Axis: AxisY}, Tooth: 0, Polarity: 1}
	target := mustState(t, 6, AxisX, 4, -1)

	_, err := Solve(origin, target)
	if !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("got %v, want ErrInvalidPosition", err)
	}
}

func TestSolveUnreachableTarget(t *testing.T) {
	// A two-position shuttle with no polarity-flipping edge: an
	// opposite-polarity target can never be reached.
	a := Position{Side: 1, Axis: AxisX}
	b := Position{Side: 2, Axis: AxisX}
	table := Table{
		a: {{To: b, ToothDelta: 1, PolarityMult: 1}},
		b: {{To: a, ToothDelta: -1, PolarityMult: 1}},
	}
	solver := NewSolverWithTable(table)

	origin := State{Pos: a, Tooth: 0, Polarity: 1}
	target := State{Pos: a, Tooth: 0, Polarity: -1}

	_, err := solver.Solve(origin, target)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("got %v, want ErrNoSolution", err)
	}
	if errors.Is(err, ErrInvalidPosition) {
		t.Error("no-solution must be distinguishable from invalid-position")
	}
}

func TestSolveEveryStateReachableFromBoxedOrigin(t *testing.T) {
	// The production table is strongly explorable: all 120 states are
	// reachable from the boxed configuration.
	origin := mustState(t, 1, AxisX, 0, 1)
	for pos := range StandardTable {
		for tooth := 0; tooth < 5; tooth++ {
			for _, polarity := range []int{1, -1} {
				target := State{Pos: pos, Tooth: tooth, Polarity: polarity}
				path, err := Solve(origin, target)
				if err != nil {
					t.Fatalf("Solve to %v failed: %v", target, err)
				}
				checkLegalPath(t, StandardTable, origin, target, path)
			}
		}
	}
}

func TestSolveConcurrentUse(t *testing.T) {
	solver := NewSolver()
	origin := mustState(t, 1, AxisX, 0, 1)
	target := mustState(t, 6, AxisX, 4, -1)

	done := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func() {
			path, err := solver.Solve(origin, target)
			if err != nil {
				done <- -1
				return
			}
			done <- len(path)
		}()
	}
	for i := 0; i < 8; i++ {
		if n := <-done; n != 16 {
			t.Errorf("concurrent solve returned %d steps, want 16", n)
		}
	}
}

func TestPathFormat(t *testing.T) {
	path := Path{
		{To: Position{Side: 2, Axis: AxisX}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{Side: 2, Axis: AxisZ}, ToothDelta: 0, PolarityMult: -1},
	}
	want := "Step 1: Move to side 2\nStep 2: Rotate\n"
	if got := path.Format(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
