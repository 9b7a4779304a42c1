package main

import (
	"os"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
