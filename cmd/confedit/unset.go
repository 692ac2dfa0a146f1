// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnsetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key and save the file",
		Long: `Remove a key and write the file back.

Removing a key that is not present is not an error. Sectioned files
need --section; the section itself is left in place even when it ends
up empty.

Examples:
  confedit unset -f app.ini timeout
  confedit unset -f app.cfg -s server port`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				return err
			}
			key := args[0]
			if err := app.deleteValue(doc, key); err != nil {
				return err
			}
			if err := doc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.WarnColor(fmt.Sprintf("unset %s", key)))
			return nil
		},
	}
	return cmd
}
