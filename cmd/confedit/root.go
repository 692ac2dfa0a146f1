// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	app := &App{Out: out, Err: errOut}
	cmd := &cobra.Command{
		Use:   "confedit",
		Short: "Read and edit configuration files",
		Long: `confedit reads and edits the flat and sectioned configuration
formats understood by the ConfigParser library.

The file to operate on comes from --file or $CONFEDIT_FILE. The
dialect is picked from the file extension (.cfg and .conf files are
sectioned, anything else is flat) and can be forced with --dialect
or $CONFEDIT_FORMAT. Set $NO_COLOR to suppress colored output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLog(app.Debug)
		},
	}

	cmd.PersistentFlags().StringVarP(&app.File, "file", "f", os.Getenv("CONFEDIT_FILE"), "configuration file to operate on")
	cmd.PersistentFlags().StringVarP(&app.Section, "section", "s", "", "section to operate on (sectioned files only)")
	cmd.PersistentFlags().StringVar(&app.Dialect, "dialect", os.Getenv("CONFEDIT_FORMAT"), "force the file dialect (ini or cfg)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "show debugging output")

	cmd.AddCommand(
		newGetCmd(app),
		newSetCmd(app),
		newUnsetCmd(app),
		newListCmd(app),
		newSectionsCmd(app),
		newDumpCmd(app),
	)

	return cmd
}

// The process-wide default logger can be installed only once; later
// initLog calls adjust the level on the installed filter.
var (
	logOnce   sync.Once
	logFilter log.LevelFilter
)

func initLog(debug bool) {
	logFilter.Min = log.Info
	if debug {
		logFilter.Min = log.Debug
	}
	logOnce.Do(func() {
		logFilter.Output = log.New(os.Stderr, "confedit: ", log.StdFlags, nil)
		log.SetDefault(&logFilter)
	})
}
