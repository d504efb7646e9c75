package main

import (
	"io"
	"os"

	"github.com/AlexZinkM/sol-cli/internal/cli"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(cli.Execute, os.Stderr))
}

// run executes the CLI and reports any failure. Every error is fatal for the invocation.
func run(execute func() error, stderr io.Writer) int {
	if err := execute(); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
