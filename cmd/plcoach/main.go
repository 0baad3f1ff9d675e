package main

import (
	"os"

	"github.com/plcoach/plcoach/cmd/plcoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
