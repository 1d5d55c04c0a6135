package main

import (
	"os"

	"github.com/acadkit/cohort/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
