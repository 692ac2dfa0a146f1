// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

// confedit reads and edits flat and sectioned configuration files
// from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "confedit:", err)
		os.Exit(1)
	}
}
