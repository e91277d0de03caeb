package ogear

import "errors"

// Sentinel errors for the ogear package.
var (
	// Search errors
	ErrInvalidPosition = errors.New("ogear: invalid position")
	ErrNoSolution      = errors.New("ogear: no solution found")
	ErrSearchLimit     = errors.New("ogear: search expansion limit exceeded")

	// State construction errors
	ErrInvalidSide     = errors.New("ogear: side must be 1 through 6")
	ErrInvalidAxis     = errors.New("ogear: axis must be X, Y or Z")
	ErrInvalidTooth    = errors.New("ogear: tooth must be 0 through 4")
	ErrInvalidPolarity = errors.New("ogear: polarity must be +1 or -1")
)
