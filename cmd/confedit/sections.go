// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	configparser "github.com/still-standing88/ConfigParser"
)

func newSectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List section names in file order",
		Long: `List the section names of a sectioned file in their file order.

Examples:
  confedit sections -f app.cfg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				return err
			}
			d, ok := doc.(*configparser.CfgFile)
			if !ok {
				return errNoSections
			}
			for _, name := range d.Sections() {
				fmt.Fprintln(app.Out, name)
			}
			return nil
		},
	}
	return cmd
}
