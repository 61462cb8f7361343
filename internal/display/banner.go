// Package display provides the startup banner and console formatting
// helpers shared by the pipeline and check packages.
package display

import (
	"fmt"
	"os"

	"github.com/ruchir321/tableflat/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _        _     _       __ _       _
| |_ __ _| |__ | | ___ / _| | __ _| |_
| __/ _` + "`" + ` | '_ \| |/ _ \ |_| |/ _` + "`" + ` | __|
| || (_| | |_) | |  __/  _| | (_| | |_
 \__\__,_|_.__/|_|\___|_| |_|\__,_|\__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
