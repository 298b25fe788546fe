// Package main is the entry point for the cowork CLI.
package main

import (
	"os"

	"github.com/watchfire-io/cowork/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
