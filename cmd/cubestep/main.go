// cubestep - paint a cube, scramble it, solve it and step through the solution.
package main

import (
	"github.com/SeamusWaldron/cubestep/internal/cli"
)

func main() {
	cli.Execute()
}
