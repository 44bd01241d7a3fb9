package main

import (
	"os"

	"github.com/reoring/polyjson/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
