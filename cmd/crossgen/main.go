// Command crossgen drives crossword searches from the command line,
// without needing the HTTP server or a database.
package main

import (
	"fmt"
	"os"

	"github.com/Hayk10002/crossword-generator/cmd/crossgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
