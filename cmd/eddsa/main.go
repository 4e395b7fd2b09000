package main

import (
	"os"

	"github.com/go-i2p/go-eddsa/cmd/eddsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
