package main

import (
	"os"

	"github.com/georm-db/georm/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
