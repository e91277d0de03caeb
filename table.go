package ogear

// Table maps each of the gear's positions to its outgoing moves. Edges
// under a key form a set: no duplicates, no meaningful order. A Table is
// never written after construction and may be shared freely.
type Table map[Position][]Transition

// Moves returns the outgoing transitions from pos. ok is false when pos
// is not one of the table's defined positions; a defined position always
// has at least one edge, so a missing key is distinct from "no moves".
func (tb Table) Moves(pos Position) ([]Transition, bool) {
	ts, ok := tb[pos]
	return ts, ok
}

// StandardTable encodes the mechanical topology of the production
// puzzle: which side/axis pairs are adjacent, and how the engaged tooth
// and the polarity change per move. Number the sides with the
// two-notch face on top (side 1) and the arrow-marked face on the right
// (side 5); side 6 is the bottom, where the puzzle opens.
//
// These values are measured facts about one physical object. They are
// copied verbatim, not derived, and changing any entry describes a
// different puzzle.
var StandardTable = Table{
	{1, AxisX}: {
		{To: Position{2, AxisX}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{4, AxisX}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{1, AxisY}, ToothDelta: 0, PolarityMult: -1},
	},
	{1, AxisY}: {
		{To: Position{3, AxisY}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{1, AxisX}, ToothDelta: 0, PolarityMult: -1},
	},
	{2, AxisX}: {
		{To: Position{1, AxisX}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{2, AxisZ}, ToothDelta: 0, PolarityMult: -1},
	},
	{2, AxisZ}: {
		{To: Position{5, AxisZ}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{2, AxisX}, ToothDelta: 0, PolarityMult: -1},
	},
	{3, AxisY}: {
		{To: Position{1, AxisY}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{6, AxisY}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{3, AxisZ}, ToothDelta: 0, PolarityMult: 1},
	},
	{3, AxisZ}: {
		{To: Position{4, AxisZ}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{3, AxisY}, ToothDelta: 0, PolarityMult: 1},
	},
	{4, AxisZ}: {
		{To: Position{3, AxisZ}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{5, AxisZ}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{4, AxisX}, ToothDelta: 0, PolarityMult: 1},
	},
	{4, AxisX}: {
		{To: Position{1, AxisX}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{4, AxisZ}, ToothDelta: 0, PolarityMult: 1},
	},
	{5, AxisZ}: {
		{To: Position{4, AxisZ}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{2, AxisZ}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{5, AxisY}, ToothDelta: 0, PolarityMult: -1},
	},
	{5, AxisY}: {
		{To: Position{6, AxisY}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{5, AxisZ}, ToothDelta: 0, PolarityMult: -1},
	},
	{6, AxisY}: {
		{To: Position{5, AxisY}, ToothDelta: 1, PolarityMult: 1},
		{To: Position{3, AxisY}, ToothDelta: -1, PolarityMult: 1},
		{To: Position{6, AxisX}, ToothDelta: 0, PolarityMult: 1},
	},
	{6, AxisX}: {
		{To: Position{6, AxisY}, ToothDelta: 0, PolarityMult: 1},
	},
}
