// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// parser is the dialect capability behind the shared file lifecycle: read
// parses a document from a stream, write serializes it, and erase drops all
// content. Each document kind implements it over its own storage, so no
// dialect inherits another's.
type parser interface {
	read(r io.Reader) error
	write(w io.Writer) error
	erase()
}

// file carries the path binding and recorded error state shared by all
// document kinds.
type file struct {
	path    string
	fsys    fileSystem
	lastErr error
}

// Path returns the bound file path, or "" when the document is unbound.
func (f *file) Path() string { return f.path }

// Err returns the error recorded by the most recent Load, Reload, or Save,
// or nil if it succeeded. Distinguish failures with errors.Is against
// ErrFileNotFound, ErrFileOpen, and ErrFileRead.
func (f *file) Err() error { return f.lastErr }

// Flush clears the recorded error without touching content or binding.
func (f *file) Flush() { f.lastErr = nil }

func (f *file) fileSystem() fileSystem {
	if f.fsys == nil {
		return osFS{}
	}
	return f.fsys
}

// load clears the recorded error, erases p, binds path, and parses it.
// Loading an empty path only erases and unbinds.
func (f *file) load(p parser, path string) error {
	f.Flush()
	p.erase()
	f.path = path
	return f.readFile(p)
}

// reload clears the recorded error, erases p, and parses the bound path
// again.
func (f *file) reload(p parser) error {
	f.Flush()
	p.erase()
	return f.readFile(p)
}

func (f *file) readFile(p parser) error {
	if f.path == "" {
		return nil
	}
	data, err := f.fileSystem().ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.lastErr = fmt.Errorf("load %s: %w", f.path, ErrFileNotFound)
		} else {
			f.lastErr = fmt.Errorf("load %s: %w: %w", f.path, ErrFileOpen, err)
		}
		return f.lastErr
	}
	if err := p.read(bytes.NewReader(data)); err != nil {
		p.erase()
		f.lastErr = fmt.Errorf("load %s: %w: %w", f.path, ErrFileRead, err)
		return f.lastErr
	}
	return nil
}

// save serializes p to path, first rebinding when path is non-empty. Saving
// with no path at all is a no-op, not an error. The serialization is fully
// buffered before any byte reaches the file system.
func (f *file) save(p parser, path string) error {
	if path != "" {
		f.path = path
	}
	if f.path == "" {
		return nil
	}
	buf := new(bytes.Buffer)
	if err := p.write(buf); err != nil {
		f.lastErr = fmt.Errorf("save %s: %w", f.path, err)
		return f.lastErr
	}
	if err := f.fileSystem().WriteFile(f.path, buf.Bytes()); err != nil {
		f.lastErr = fmt.Errorf("save %s: %w: %w", f.path, ErrFileOpen, err)
		return f.lastErr
	}
	return nil
}
