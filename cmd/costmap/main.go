// Package main is the entry point for the costmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cityindex-labs/costmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
