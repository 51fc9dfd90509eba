// Package main is the entry point for the pricing CLI.
package main

import (
	"os"

	"github.com/nurpe/freelance-pricing/cmd/pricing-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
