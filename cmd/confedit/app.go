// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
	"zombiezen.com/go/log"

	configparser "github.com/still-standing88/ConfigParser"
)

// App holds the state shared by every confedit command.
type App struct {
	Out io.Writer
	Err io.Writer

	File    string
	Section string
	Dialect string
	Debug   bool
}

// document holds either a *configparser.IniFile or a
// *configparser.CfgFile. Saving is the one operation the commands use
// on both; dialect-specific access goes through type switches.
type document interface {
	Save() error
}

var (
	errNeedSection = errors.New("sectioned files need --section")
	errNoSections  = errors.New("flat files have no sections")
)

// dialect resolves the file dialect from --dialect or, failing that,
// the file extension.
func (a *App) dialect() string {
	if a.Dialect != "" {
		return a.Dialect
	}
	switch filepath.Ext(a.File) {
	case ".cfg", ".conf":
		return "cfg"
	}
	return "ini"
}

// openDocument loads the file named by --file. The returned document
// is usable even when the error is ErrFileNotFound.
func (a *App) openDocument(ctx context.Context) (document, error) {
	if a.File == "" {
		return nil, errors.New("no file given (use --file or $CONFEDIT_FILE)")
	}
	switch d := a.dialect(); d {
	case "ini":
		log.Debugf(ctx, "loading %s as a flat file", a.File)
		return configparser.OpenIniFile(a.File)
	case "cfg":
		log.Debugf(ctx, "loading %s as a sectioned file", a.File)
		return configparser.OpenCfgFile(a.File)
	default:
		return nil, fmt.Errorf("unknown dialect %q (want ini or cfg)", d)
	}
}

// lookupValue finds key in the document, honoring --section.
func (a *App) lookupValue(doc document, key string) (configparser.Value, error) {
	switch d := doc.(type) {
	case *configparser.IniFile:
		if a.Section != "" {
			return configparser.Value{}, errNoSections
		}
		return d.Get(key)
	case *configparser.CfgFile:
		if a.Section == "" {
			return configparser.Value{}, errNeedSection
		}
		sec, err := d.Section(a.Section)
		if err != nil {
			return configparser.Value{}, err
		}
		return sec.Get(key)
	}
	return configparser.Value{}, fmt.Errorf("unknown document type %T", doc)
}

// putValue upserts key in the document, honoring --section. Missing
// sections are created.
func (a *App) putValue(doc document, key string, v configparser.Value) error {
	switch d := doc.(type) {
	case *configparser.IniFile:
		if a.Section != "" {
			return errNoSections
		}
		d.Put(key, v)
		return nil
	case *configparser.CfgFile:
		if a.Section == "" {
			return errNeedSection
		}
		d.AddSection(a.Section)
		sec, err := d.Section(a.Section)
		if err != nil {
			return err
		}
		sec.Put(key, v)
		return nil
	}
	return fmt.Errorf("unknown document type %T", doc)
}

// deleteValue removes key from the document, honoring --section.
// Removing a key that is not present is not an error.
func (a *App) deleteValue(doc document, key string) error {
	switch d := doc.(type) {
	case *configparser.IniFile:
		if a.Section != "" {
			return errNoSections
		}
		d.Delete(key)
		return nil
	case *configparser.CfgFile:
		if a.Section == "" {
			return errNeedSection
		}
		sec, err := d.Section(a.Section)
		if err != nil {
			return err
		}
		sec.Delete(key)
		return nil
	}
	return fmt.Errorf("unknown document type %T", doc)
}

// SuccessColor returns the string wrapped in green ANSI codes when Out
// is a terminal and $NO_COLOR is unset.
func (a *App) SuccessColor(s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in yellow ANSI codes when Out
// is a terminal and $NO_COLOR is unset.
func (a *App) WarnColor(s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[33m" + s + "\033[0m"
	}
	return s
}
