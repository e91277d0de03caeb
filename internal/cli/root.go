// Package cli implements the command-line interface for ogear.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "ogear",
	Short: "Cast O'Gear puzzle solver",
	Long: `ogear - A solver for the Hanayama Cast O'Gear puzzle.

Describe where the gear currently sits on the cube and where you want it,
and ogear computes the shortest sequence of rotations and side changes
that gets it there. Solved runs are kept in a local history so previous
solutions can be reviewed later.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.ogear/ogear.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
