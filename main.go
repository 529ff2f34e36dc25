// Palette-extractor as a command line tool (CLI) is documented in the
// project's README:
// https://github.com/diwalsh/color-palette-extractor#readme
package main

import (
	"os"

	"github.com/diwalsh/color-palette-extractor/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
