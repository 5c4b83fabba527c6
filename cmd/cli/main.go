// Package main is the entry point for the service-quote CLI.
package main

import (
	"os"

	"service-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
