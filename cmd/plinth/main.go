package main

import (
	"os"

	"plinth/cmd/plinth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
