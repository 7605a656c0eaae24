// Package main is the entry point for the todos-tui application.
package main

import (
	"fmt"
	"os"

	"github.com/hy4ri/todos-tui/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
