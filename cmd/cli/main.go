package main

import (
	"fmt"
	"os"

	"github.com/de-tools/sales-analyzer/pkg/runtime/terminal"
)

// set with -ldflags "-X main.version=..."
var version string

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Output:  os.Stdout,
		Version: version,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
