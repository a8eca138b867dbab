package main

import (
	"os"

	"github.com/Amr-9/nwcgen/cmd/nwcgen/commands"
	"github.com/Amr-9/nwcgen/internal/logging"
)

func main() {
	if err := commands.Execute(); err != nil {
		logging.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
