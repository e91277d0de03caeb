// Package ogear solves the Hanayama Cast O'Gear puzzle: a five-toothed
// gear that walks across the faces of a small cube, one tooth always
// engaged with the cube's interior mechanism.
//
// # Model
//
// The gear occupies one of twelve positions, each a (side, axis) pair:
// the cube face it sits on (1-6) and the spatial axis it is aligned with
// (X, Y or Z). A full configuration adds which tooth (0-4) is engaged and
// the gear's polarity (+1 when the marked face points along the axis's
// positive direction, -1 otherwise). Legal moves are encoded in a fixed
// transition table; each move either rotates the gear in place or walks
// it to an adjacent side, shifting the engaged tooth and possibly
// flipping polarity.
//
// # Quick Start
//
// Find the shortest move sequence between two configurations:
//
//	origin, err := ogear.NewState(1, ogear.AxisX, 0, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	target, err := ogear.NewState(6, ogear.AxisX, 4, -1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	path, err := ogear.Solve(origin, target)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, t := range path {
//	    fmt.Printf("Step %d: %s\n", i+1, t.Description())
//	}
//
// An unreachable target is reported as ErrNoSolution; an origin whose
// position is not one of the twelve defined positions is reported as
// ErrInvalidPosition. Both are matched with errors.Is.
//
// # Custom tables
//
// The standard table describes the production puzzle. A Solver can be
// constructed over a different Table of the same shape, which is mainly
// useful for testing:
//
//	solver := ogear.NewSolverWithTable(table)
//	path, err := solver.Solve(origin, target)
//
// Tables are never written after construction, so a single Solver may be
// shared by concurrent Solve calls.
package ogear
