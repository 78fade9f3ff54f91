// main is the entry point for the crimelens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/safecity/crimelens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
