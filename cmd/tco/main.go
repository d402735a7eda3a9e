// Package main is the entry point for the tco CLI.
package main

import (
	"os"

	"github.com/rpgo/tco-parity/cmd/tco/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
