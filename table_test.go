package ogear

import "testing"

func TestStandardTableHasTwelvePositions(t *testing.T) {
	if len(StandardTable) != 12 {
		t.Errorf("got %d positions, want 12", len(StandardTable))
	}
}

func TestStandardTableEdgesStayOnTable(t *testing.T) {
	for pos, moves := range StandardTable {
		if len(moves) == 0 {
			t.Errorf("%s has no outgoing moves", pos)
		}
		for _, m := range moves {
			if _, ok := StandardTable.Moves(m.To); !ok {
				t.Errorf("%s has edge to undefined position %s", pos, m.To)
			}
		}
	}
}

func TestStandardTableHasNoDuplicateEdges(t *testing.T) {
	for pos, moves := range StandardTable {
		seen := map[Transition]struct{}{}
		for _, m := range moves {
			if _, dup := seen[m]; dup {
				t.Errorf("%s lists edge %v twice", pos, m)
			}
			seen[m] = struct{}{}
		}
	}
}

func TestStandardTableEdgeSemantics(t *testing.T) {
	for pos, moves := range StandardTable {
		for _, m := range moves {
			switch m.ToothDelta {
			case -1, 0, 1:
			default:
				t.Errorf("%s edge %v: tooth delta out of range", pos, m)
			}
			if m.PolarityMult != 1 && m.PolarityMult != -1 {
				t.Errorf("%s edge %v: bad polarity multiplier", pos, m)
			}
			// A side change always shifts the engaged tooth; only
			// in-place rotations leave it alone.
			if (m.To.Side == pos.Side) != m.IsRotation() {
				t.Errorf("%s edge %v: rotation/side-change mismatch", pos, m)
			}
		}
	}
}

func TestMovesUndefinedPosition(t *testing.T) {
	// Side 2 never aligns with Y on the physical puzzle.
	if _, ok := StandardTable.Moves(Position{Side: 2, Axis: AxisY}); ok {
		t.Error("lookup of undefined position should fail")
	}
}

func TestTerminalPositionClosesTheCycle(t *testing.T) {
	moves, ok := StandardTable.Moves(Position{Side: 6, Axis: AxisX})
	if !ok {
		t.Fatal("terminal position missing from table")
	}
	if len(moves) != 1 {
		t.Fatalf("got %d edges, want 1", len(moves))
	}
	want := Transition{To: Position{Side: 6, Axis: AxisY}, ToothDelta: 0, PolarityMult: 1}
	if moves[0] != want {
		t.Errorf("got %v, want %v", moves[0], want)
	}
}
