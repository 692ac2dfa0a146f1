// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"errors"
	"fmt"
)

// Errors recorded on a document by Load, Reload, and Save. Test the error
// returned by a document's Err method with errors.Is.
var (
	// ErrFileNotFound indicates the bound path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileOpen indicates the bound path could not be opened or replaced.
	ErrFileOpen = errors.New("cannot open file")

	// ErrFileRead indicates an I/O fault while reading the bound path.
	ErrFileRead = errors.New("cannot read file")
)

// Errors returned by lookups. These are never recorded on a document: they
// report on the call, not on the backing file.
var (
	// ErrKeyNotFound indicates a key lookup on a section or document missed.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSectionNotFound indicates a section lookup on a document missed.
	ErrSectionNotFound = errors.New("section not found")
)

// A ConversionError is returned by a Value's typed accessors when the
// underlying text does not parse as the requested type.
type ConversionError struct {
	// Type is the name of the requested type.
	Type string
	// Text is the value's canonical text.
	Text string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %q is not a valid %s", e.Text, e.Type)
}

func (e *ConversionError) Unwrap() error { return e.Err }
