package main

import (
	"os"

	"github.com/tallyworks/receiptor/cmd/receiptor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
