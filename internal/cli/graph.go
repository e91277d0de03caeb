package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ogear"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the puzzle's transition table",
	Long: `Print every position of the gear and the legal moves out of it.

Positions are (side, axis) pairs. Each move shows the destination, the
raw tooth shift before polarity is applied, and whether it flips the
gear's polarity.`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	table := ogear.StandardTable

	// The table itself is unordered; sort for readable output only.
	positions := make([]ogear.Position, 0, len(table))
	for pos := range table {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Side != positions[j].Side {
			return positions[i].Side < positions[j].Side
		}
		return positions[i].Axis < positions[j].Axis
	})

	for _, pos := range positions {
		moves, _ := table.Moves(pos)
		fmt.Printf("%s:\n", pos)
		for _, m := range moves {
			flip := ""
			if m.PolarityMult == -1 {
				flip = ", flips polarity"
			}
			if m.IsRotation() {
				fmt.Printf("  rotate in place to %s%s\n", m.To, flip)
			} else {
				fmt.Printf("  move to %s, tooth %+d%s\n", m.To, m.ToothDelta, flip)
			}
		}
	}

	return nil
}
