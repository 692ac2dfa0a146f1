// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single value",
		Long: `Print the value stored under a key.

Sectioned files need --section to name the section to read.

Examples:
  confedit get -f app.ini timeout
  confedit get -f app.cfg -s server port`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				return err
			}
			v, err := app.lookupValue(doc, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, v.String())
			return nil
		},
	}
	return cmd
}
