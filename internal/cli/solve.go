package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ogear"
)

var (
	solveFrom  stateFlags
	solveTo    stateFlags
	solveNotes string
	noSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the shortest move sequence between two configurations",
	Long: `Compute the shortest sequence of moves transforming the gear from an
origin configuration to a target configuration.

Each configuration is given by four values: the cube side the gear sits
on (1-6), the axis it is aligned with (X, Y or Z), the tooth currently
engaged inside the cube (0-4), and whether the marked face of the gear
points along the axis's positive direction.

The defaults describe the boxed puzzle and its solved configuration, so
a bare 'ogear solve' prints the full solution.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveFrom.register(solveCmd.Flags(), "from", stateFlags{side: 1, axis: "X", tooth: 0, facing: true})
	solveTo.register(solveCmd.Flags(), "to", stateFlags{side: 6, axis: "X", tooth: 4, facing: false})
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes to store with this solve")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record this solve in history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	origin, err := solveFrom.state()
	if err != nil {
		return fmt.Errorf("invalid origin: %w", err)
	}
	target, err := solveTo.state()
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	fmt.Println(describe("Origin", origin))
	fmt.Println(describe("Target", target))

	path, err := ogear.Solve(origin, target)
	if errors.Is(err, ogear.ErrNoSolution) {
		return fmt.Errorf("no solution: the target cannot be reached from the origin")
	}
	if err != nil {
		return err
	}

	if len(path) == 0 {
		fmt.Println("Already there: the origin and target configurations are identical")
	} else {
		fmt.Print(path.Format())
	}

	if noSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := saveSolve(db, origin, target, path, solveNotes)
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}
	if verbose {
		fmt.Printf("\nRecorded solve: %s\n", id)
	}

	return nil
}
