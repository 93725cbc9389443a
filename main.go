// Mindful - a command-line meditation tracker
package main

import (
	"os"

	"github.com/manav03panchal/mindful/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
