package ogear

import (
	"fmt"
	"strings"
)

// Axis is one of the three spatial directions the gear can be aligned
// with on a given side.
type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
	AxisZ Axis = "Z"
)

func (a Axis) String() string {
	return string(a)
}

// ParseAxis parses an axis name. It accepts "X", "Y" and "Z" in either
// case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// Position identifies where the gear sits on the cube: the face it
// occupies and the axis it is aligned with. Only the twelve positions
// keyed in the transition table are valid; there is no (side, axis)
// pair off the table that the gear can physically reach.
type Position struct {
	Side int  // cube face, 1-6
	Axis Axis // alignment axis on that face
}

// String returns the position in "side 3 axis Y" form.
func (p Position) String() string {
	return fmt.Sprintf("side %d axis %s", p.Side, p.Axis)
}
