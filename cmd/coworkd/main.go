// Package main is the entry point for the coworkd daemon.
package main

import (
	"os"

	"github.com/watchfire-io/cowork/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
