package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/SeamusWaldron/ogear"
	"github.com/SeamusWaldron/ogear/internal/storage"
)

// stateFlags is one endpoint of a search as given on the command line.
// facing maps to polarity: true means the marked face points along the
// axis's positive direction (+1), false the opposite (-1).
type stateFlags struct {
	side   int
	axis   string
	tooth  int
	facing bool
}

// state validates the flag values and builds the library State.
func (f stateFlags) state() (ogear.State, error) {
	axis, err := ogear.ParseAxis(f.axis)
	if err != nil {
		return ogear.State{}, err
	}
	polarity := -1
	if f.facing {
		polarity = 1
	}
	return ogear.NewState(f.side, axis, f.tooth, polarity)
}

// register adds the endpoint's four flags under the given prefix, with
// the given defaults.
func (f *stateFlags) register(fs *pflag.FlagSet, prefix string, defaults stateFlags) {
	fs.IntVar(&f.side, prefix+"-side", defaults.side, fmt.Sprintf("%s side of the cube (1-6)", prefix))
	fs.StringVar(&f.axis, prefix+"-axis", defaults.axis, fmt.Sprintf("%s axis of the gear (X, Y or Z)", prefix))
	fs.IntVar(&f.tooth, prefix+"-tooth", defaults.tooth, fmt.Sprintf("%s engaged tooth (0-4)", prefix))
	fs.BoolVar(&f.facing, prefix+"-facing", defaults.facing, fmt.Sprintf("%s gear faces its axis", prefix))
}

// describe renders an endpoint header line matching the step output.
func describe(label string, s ogear.State) string {
	return fmt.Sprintf("%s: %s", label, s)
}

// openDB opens the history database from the --db flag or default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// saveSolve records a completed run in the history database.
func saveSolve(db *storage.DB, origin, target ogear.State, path ogear.Path, notes string) (string, error) {
	repo := storage.NewSolveRepository(db)
	return repo.Create(origin, target, path, notes)
}
