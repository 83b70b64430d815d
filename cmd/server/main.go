package main

import (
	"fmt"
	"os"
)

// main builds the CLI and exits non-zero on failure. Wiring lives in app.go,
// business logic in internal/evaluation.
func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
