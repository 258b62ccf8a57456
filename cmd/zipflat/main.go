// Command zipflat generates zip archives of synthetic XML documents and
// flattens them into tabular output files.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/zipflat/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
