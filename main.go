package main

import (
	"os"

	"github.com/tranhn/khtn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
