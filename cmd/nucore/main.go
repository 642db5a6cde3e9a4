package main

import (
	"os"

	"nucore/cmd/nucore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
