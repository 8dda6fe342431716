// Package main is the entry point for the netexposure CLI.
package main

import (
	"os"

	"netexposure/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
