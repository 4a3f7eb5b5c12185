package main

import (
	"os"

	"github.com/katalvlaran/cosmodist/cmd/cosmodist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
