// SPDX-License-Identifier: MIT

// Command lae evaluates a matrix expression file.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lae/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
