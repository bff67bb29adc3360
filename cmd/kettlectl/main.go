package main

import (
	"bitumen_production/cmd/kettlectl/commands"
	"os"
)

func main() {
	// Errors are printed by the commands with color formatting
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
