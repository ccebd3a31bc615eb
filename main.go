// main holds the entry logic for the gitpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gitpulse/gitpulse/cmd"
	"github.com/gitpulse/gitpulse/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// os.Exit skips deferred calls, so the store is closed explicitly
	// before deciding the exit code.
	runstore.CloseStore()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
