package ogear

import "fmt"

// defaultMaxExpansions caps how many states a search may dequeue. The
// standard table has at most 12*5*2 = 120 distinct states, so the cap
// only trips on a malformed injected table; it turns such a table into
// an error instead of unbounded queue growth.
const defaultMaxExpansions = 10000

// Solver finds shortest move sequences over a transition table. The
// zero value is not usable; construct with NewSolver or
// NewSolverWithTable. A Solver is read-only after construction and safe
// for concurrent use.
type Solver struct {
	table         Table
	maxExpansions int
}

// NewSolver returns a Solver over the standard puzzle table.
func NewSolver() *Solver {
	return NewSolverWithTable(StandardTable)
}

// NewSolverWithTable returns a Solver over a custom table. The table
// must not be modified afterwards.
func NewSolverWithTable(table Table) *Solver {
	return &Solver{table: table, maxExpansions: defaultMaxExpansions}
}

// frontier is one pending BFS entry: a reached state plus the moves
// that reached it.
type frontier struct {
	state State
	path  Path
}

// Solve returns a shortest sequence of legal moves from origin to
// target. When several sequences tie for length, which one is returned
// depends on table enumeration order; only the length and the legality
// of each step are guaranteed.
//
// Solve fails with ErrInvalidPosition when a state's position has no
// table entry (a malformed origin, or a malformed table reached
// mid-search), and with ErrNoSolution when the reachable state space is
// exhausted without meeting target.
func (s *Solver) Solve(origin, target State) (Path, error) {
	if origin == target {
		return Path{}, nil
	}

	queue := []frontier{{state: origin}}
	visited := map[State]struct{}{origin: {}}

	for expansions := 0; len(queue) > 0; expansions++ {
		if expansions >= s.maxExpansions {
			return nil, fmt.Errorf("%w: %d states expanded", ErrSearchLimit, expansions)
		}

		cur := queue[0]
		queue = queue[1:]

		moves, ok := s.table.Moves(cur.state.Pos)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPosition, cur.state.Pos)
		}

		for _, t := range moves {
			next := cur.state.Apply(t)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			// Copy, never alias: sibling edges each extend cur.path.
			nextPath := make(Path, len(cur.path), len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath = append(nextPath, t)

			if next == target {
				return nextPath, nil
			}
			queue = append(queue, frontier{state: next, path: nextPath})
		}
	}

	return nil, fmt.Errorf("%w: target %s is not reachable from %s", ErrNoSolution, target, origin)
}

// Solve runs a search over the standard puzzle table. It is shorthand
// for NewSolver().Solve(origin, target).
func Solve(origin, target State) (Path, error) {
	return NewSolver().Solve(origin, target)
}
