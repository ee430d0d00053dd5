package main

import (
	"os"

	"toolbox/go-backend/cmd/toolbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
