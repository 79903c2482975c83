package main

import (
	"os"

	"github.com/CNOCTAVE/srt-player/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
