// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	configparser "github.com/still-standing88/ConfigParser"
)

func newSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value and save the file",
		Long: `Set a key to a value and write the file back.

The file is created if it does not exist yet. Sectioned files need
--section; the section is created if missing. Setting a key that
already exists replaces its value in place.

Examples:
  confedit set -f app.ini timeout 30
  confedit set -f app.cfg -s server port 8080`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				if !errors.Is(err, configparser.ErrFileNotFound) {
					return err
				}
				log.Debugf(cmd.Context(), "%s does not exist yet, it will be created on save", app.File)
			}
			key, value := args[0], args[1]
			if err := app.putValue(doc, key, configparser.StringValue(value)); err != nil {
				return err
			}
			if err := doc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("set %s = %s", key, value)))
			return nil
		},
	}
	return cmd
}
