// ogear - CLI solver for the Hanayama Cast O'Gear puzzle.
package main

import (
	"github.com/SeamusWaldron/ogear/internal/cli"
)

func main() {
	cli.Execute()
}
