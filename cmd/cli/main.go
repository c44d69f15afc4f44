// Package main is the entry point for the wire-drop CLI.
package main

import (
	"os"

	"wire-drop/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
