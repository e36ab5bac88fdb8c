package main

import (
	"os"

	"github.com/nfdez/brainctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
