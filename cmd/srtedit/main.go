package main

import (
	"os"

	"github.com/mkonda/srtedit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
