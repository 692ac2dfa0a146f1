// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// An IniFile is a flat-dialect document: a single namespace of key/value
// pairs plus the comment and blank lines around them. Keys keep insertion
// order, and comments and blanks keep their positions across a load/save
// cycle. The zero IniFile is an empty, unbound document ready to use.
//
// An IniFile is not safe for concurrent use.
type IniFile struct {
	file
	sec   Section
	lines []line
}

var _ parser = (*IniFile)(nil)

// NewIniFile returns an empty document not bound to any file.
func NewIniFile() *IniFile { return new(IniFile) }

// OpenIniFile loads the flat-dialect file at path. The returned document is
// always usable; when loading fails it is empty, with the error both
// returned and recorded on the document (see Err).
func OpenIniFile(path string) (*IniFile, error) {
	f := NewIniFile()
	err := f.Load(path)
	return f, err
}

// Load clears any recorded error, erases the document, binds path, and
// parses its contents. Loading an empty path only erases and unbinds.
func (f *IniFile) Load(path string) error { return f.load(f, path) }

// Reload clears any recorded error, erases the document, and parses the
// bound path again.
func (f *IniFile) Reload() error { return f.reload(f) }

// Save serializes the document to the bound path. With no bound path, Save
// does nothing.
func (f *IniFile) Save() error { return f.save(f, "") }

// SaveAs binds path and serializes the document to it.
func (f *IniFile) SaveAs(path string) error { return f.save(f, path) }

// Insert adds key with value v, recording a line for it at the end of the
// document. If key already exists, Insert does nothing: the first writer
// wins.
func (f *IniFile) Insert(key string, v Value) {
	if f.sec.Has(key) {
		return
	}
	f.lines = append(f.lines, line{kind: lineValue, text: key})
	f.sec.Insert(key, v)
}

// Update replaces the value of an existing key in place. If key does not
// exist, Update does nothing.
func (f *IniFile) Update(key string, v Value) {
	f.sec.Update(key, v)
}

// Put adds key with value v, replacing any existing value. A new key is
// recorded as a line at the end of the document; an existing key keeps its
// position.
func (f *IniFile) Put(key string, v Value) {
	if !f.sec.Has(key) {
		f.lines = append(f.lines, line{kind: lineValue, text: key})
	}
	f.sec.Put(key, v)
}

// GetOrCreate returns a mutable reference to the value for key. If key does
// not exist it is created with empty text and recorded as a line at the end
// of the document, exactly once.
func (f *IniFile) GetOrCreate(key string) *Value {
	if !f.sec.Has(key) {
		f.lines = append(f.lines, line{kind: lineValue, text: key})
	}
	return f.sec.GetOrCreate(key)
}

// Get returns the value for key. It returns an error wrapping
// ErrKeyNotFound if key does not exist.
func (f *IniFile) Get(key string) (Value, error) {
	if f == nil {
		return Value{}, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
	}
	return f.sec.Get(key)
}

// Lookup returns the value for key and reports whether it exists.
func (f *IniFile) Lookup(key string) (Value, bool) {
	if f == nil {
		return Value{}, false
	}
	return f.sec.Lookup(key)
}

// Pop removes key, dropping its line, and returns the value it held. It
// returns an error wrapping ErrKeyNotFound if key does not exist.
func (f *IniFile) Pop(key string) (Value, error) {
	v, err := f.sec.Pop(key)
	if err != nil {
		return Value{}, err
	}
	f.lines = removeLine(f.lines, lineValue, key)
	return v, nil
}

// Delete removes key and its line. If key does not exist, Delete does
// nothing.
func (f *IniFile) Delete(key string) {
	if !f.sec.Has(key) {
		return
	}
	f.lines = removeLine(f.lines, lineValue, key)
	f.sec.Delete(key)
}

// Has reports whether key exists.
func (f *IniFile) Has(key string) bool {
	return f != nil && f.sec.Has(key)
}

// Len returns the number of keys.
func (f *IniFile) Len() int {
	if f == nil {
		return 0
	}
	return f.sec.Len()
}

// Keys returns a snapshot of the keys in insertion order.
func (f *IniFile) Keys() []string {
	if f == nil {
		return nil
	}
	return f.sec.Keys()
}

// Clear removes all keys and lines. The binding and any recorded error
// stay.
func (f *IniFile) Clear() { f.erase() }

func (f *IniFile) erase() {
	f.lines = nil
	f.sec.Clear()
}

// read parses flat-dialect text. Comments and blanks are recorded in
// position and lines containing '=' become key/value pairs with the
// first occurrence of a key winning. Anything else is skipped.
func (f *IniFile) read(r io.Reader) error {
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		ln := strings.TrimSpace(s.Text())
		switch {
		case ln == "":
			f.lines = append(f.lines, line{kind: lineBlank})
		case strings.HasPrefix(ln, "#"):
			f.lines = append(f.lines, line{kind: lineComment, text: ln})
		case strings.Contains(ln, "="):
			key, value, _ := strings.Cut(ln, "=")
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			f.lines = append(f.lines, line{kind: lineValue, text: key})
			f.sec.Insert(key, StringValue(strings.TrimSpace(value)))
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineno+1, err)
	}
	return nil
}

func (f *IniFile) write(w io.Writer) error {
	_, err := w.Write(f.appendText(nil))
	return err
}

func (f *IniFile) appendText(buf []byte) []byte {
	for _, ln := range f.lines {
		switch ln.kind {
		case lineBlank:
			buf = append(buf, '\n')
		case lineComment:
			buf = append(buf, ln.text...)
			buf = append(buf, '\n')
		case lineValue:
			v, ok := f.sec.Lookup(ln.text)
			if !ok {
				continue
			}
			buf = appendPair(buf, ln.text, v)
		}
	}
	return buf
}

// MarshalText serializes the document, reproducing comment and blank lines
// around the current pairs.
func (f *IniFile) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	return f.appendText(nil), nil
}

// UnmarshalText parses data, replacing the document's content. The binding
// and any recorded error stay.
func (f *IniFile) UnmarshalText(data []byte) error {
	f.erase()
	if err := f.read(bytes.NewReader(data)); err != nil {
		f.erase()
		return err
	}
	return nil
}
