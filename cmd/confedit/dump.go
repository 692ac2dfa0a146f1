// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configparser "github.com/still-standing88/ConfigParser"
)

func newDumpCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the whole file as YAML or JSON",
		Long: `Write the whole file to stdout as YAML (the default) or JSON.

Flat files come out as a single mapping, sectioned files as one
mapping per section. Keys are sorted alphabetically by the encoder;
dump is for exporting, not for faithful round-trips.

Examples:
  confedit dump -f app.ini
  confedit dump -f app.cfg --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.openDocument(cmd.Context())
			if err != nil {
				return err
			}
			var tree any
			switch d := doc.(type) {
			case *configparser.IniFile:
				tree = flatMap(d)
			case *configparser.CfgFile:
				m := make(map[string]map[string]string)
				for _, name := range d.Sections() {
					sec, _ := d.Section(name)
					m[name] = sectionMap(sec)
				}
				tree = m
			}
			switch format {
			case "yaml":
				data, err := yaml.Marshal(tree)
				if err != nil {
					return err
				}
				_, err = app.Out.Write(data)
				return err
			case "json":
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(tree)
			}
			return fmt.Errorf("unknown format %q (want yaml or json)", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or json)")
	return cmd
}

func flatMap(f *configparser.IniFile) map[string]string {
	m := make(map[string]string, f.Len())
	for _, key := range f.Keys() {
		v, _ := f.Lookup(key)
		m[key] = v.String()
	}
	return m
}

func sectionMap(sec *configparser.Section) map[string]string {
	m := make(map[string]string, sec.Len())
	for _, key := range sec.Keys() {
		v, _ := sec.Lookup(key)
		m[key] = v.String()
	}
	return m
}
