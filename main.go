package main

import (
	"os"

	"github.com/verbora/verbora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
