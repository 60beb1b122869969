// Cronoz - a command-line activity time tracker.
package main

import (
	"os"

	"github.com/cronozapp/cronoz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
