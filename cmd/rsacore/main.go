package main

import (
	"os"

	"rsacore/cmd/rsacore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
