package ogear

import "fmt"

// State is a full gear configuration: position on the cube, which of
// the five teeth is engaged with the interior mechanism, and the gear's
// polarity (+1 when the marked face points along the axis's positive
// direction, -1 otherwise).
//
// State is a value type. Applying a transition derives a new State;
// existing values are never mutated.
type State struct {
	Pos      Position
	Tooth    int // engaged tooth, 0-4
	Polarity int // +1 or -1
}

// NewState validates the four configuration fields and builds a State.
func NewState(side int, axis Axis, tooth, polarity int) (State, error) {
	if side < 1 || side > 6 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	switch axis {
	case AxisX, AxisY, AxisZ:
	default:
		return State{}, fmt.Errorf("%w: got %q", ErrInvalidAxis, string(axis))
	}
	if tooth < 0 || tooth > 4 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidTooth, tooth)
	}
	if polarity != 1 && polarity != -1 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidPolarity, polarity)
	}
	return State{
		Pos:      Position{Side: side, Axis: axis},
		Tooth:    tooth,
		Polarity: polarity,
	}, nil
}

// Apply derives the state reached by making move t from s.
//
// The tooth delta is applied in the direction the gear currently faces:
// a move that advances the tooth index with polarity +1 retreats it with
// polarity -1, so the raw delta is multiplied by the current polarity
// before the mod-5 wrap.
func (s State) Apply(t Transition) State {
	return State{
		Pos:      t.To,
		Tooth:    mod5(s.Tooth + t.ToothDelta*s.Polarity),
		Polarity: s.Polarity * t.PolarityMult,
	}
}

// String returns the state in "side 1 axis X tooth 0 polarity +1" form.
func (s State) String() string {
	return fmt.Sprintf("%s tooth %d polarity %+d", s.Pos, s.Tooth, s.Polarity)
}

// mod5 wraps a tooth index into [0, 4]. Go's % keeps the dividend's
// sign, so negative inputs need the extra add.
func mod5(n int) int {
	return ((n % 5) + 5) % 5
}
