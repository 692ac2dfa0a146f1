// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	configparser "github.com/still-standing88/ConfigParser"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List key = value pairs in file order",
		Long: `List the key = value pairs of a file in their file order.

For sectioned files, --section narrows the listing to one section;
without it every section is listed under its [name] header.

Examples:
  confedit list -f app.ini
  confedit list -f app.cfg -s server`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				return err
			}
			switch d := doc.(type) {
			case *configparser.IniFile:
				if app.Section != "" {
					return errNoSections
				}
				for _, key := range d.Keys() {
					v, _ := d.Lookup(key)
					fmt.Fprintf(app.Out, "%s = %s\n", key, v.String())
				}
			case *configparser.CfgFile:
				if app.Section != "" {
					sec, err := d.Section(app.Section)
					if err != nil {
						return err
					}
					listSection(app.Out, sec)
					return nil
				}
				for i, name := range d.Sections() {
					if i > 0 {
						fmt.Fprintln(app.Out)
					}
					fmt.Fprintf(app.Out, "[%s]\n", name)
					sec, _ := d.Section(name)
					listSection(app.Out, sec)
				}
			}
			return nil
		},
	}
	return cmd
}

func listSection(w io.Writer, sec *configparser.Section) {
	for _, key := range sec.Keys() {
		v, _ := sec.Lookup(key)
		fmt.Fprintf(w, "%s = %s\n", key, v.String())
	}
}
