package ogear

import (
	"fmt"
	"strings"
)

// Transition is a single legal move of the gear: either an in-place
// rotation on the current side, or a walk to an adjacent side.
type Transition struct {
	To           Position // position after the move
	ToothDelta   int      // raw tooth-index change, before polarity is applied; 0 for rotations
	PolarityMult int      // -1 when the move flips polarity, +1 otherwise
}

// IsRotation reports whether the move rotates the gear in place rather
// than walking it to another side.
func (t Transition) IsRotation() bool {
	return t.ToothDelta == 0
}

// Description returns the human instruction for this move: "Rotate" for
// in-place rotations, "Move to side N" for side changes.
func (t Transition) Description() string {
	if t.IsRotation() {
		return "Rotate"
	}
	return fmt.Sprintf("Move to side %d", t.To.Side)
}

// String returns a compact form like "-> side 5 axis Z (tooth -1)".
func (t Transition) String() string {
	if t.IsRotation() {
		return fmt.Sprintf("-> %s (rotate)", t.To)
	}
	return fmt.Sprintf("-> %s (tooth %+d)", t.To, t.ToothDelta)
}

// Path is an ordered sequence of transitions from an origin state to a
// target state. A returned Path is owned by the caller; replaying it
// with State.Apply from the origin reproduces the target.
type Path []Transition

// Replay applies the path's transitions to origin in order and returns
// the final state.
func (p Path) Replay(origin State) State {
	s := origin
	for _, t := range p {
		s = s.Apply(t)
	}
	return s
}

// Format renders the path as numbered instruction lines, one per move,
// starting at step 1.
func (p Path) Format() string {
	var b strings.Builder
	for i, t := range p {
		fmt.Fprintf(&b, "Step %d: %s\n", i+1, t.Description())
	}
	return b.String()
}
