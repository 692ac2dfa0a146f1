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

// A CfgFile is a sectioned-dialect document: named [section] groups of
// key/value pairs separated by blank lines, plus the comment and blank
// lines between groups. Sections and their keys keep insertion order
// across a load/save cycle. The zero CfgFile is an empty, unbound document
// ready to use.
//
// A CfgFile is not safe for concurrent use.
type CfgFile struct {
	file
	sections map[string]*Section
	names    []string
	lines    []line
}

var _ parser = (*CfgFile)(nil)

// NewCfgFile returns an empty document not bound to any file.
func NewCfgFile() *CfgFile { return new(CfgFile) }

// OpenCfgFile loads the sectioned-dialect file at path. The returned
// document is always usable; when loading fails it is empty, with the
// error both returned and recorded on the document (see Err).
func OpenCfgFile(path string) (*CfgFile, error) {
	f := NewCfgFile()
	err := f.Load(path)
	return f, err
}

// Load clears any recorded error, erases the document, binds path, and
// parses its contents. Loading an empty path only erases and unbinds.
func (f *CfgFile) Load(path string) error { return f.load(f, path) }

// Reload clears any recorded error, erases the document, and parses the
// bound path again.
func (f *CfgFile) Reload() error { return f.reload(f) }

// Save serializes the document to the bound path. With no bound path, Save
// does nothing.
func (f *CfgFile) Save() error { return f.save(f, "") }

// SaveAs binds path and serializes the document to it.
func (f *CfgFile) SaveAs(path string) error { return f.save(f, path) }

// AddSection creates an empty section with the given name, recording its
// header line at the end of the document. If the section already exists,
// AddSection does nothing.
func (f *CfgFile) AddSection(name string) {
	f.openSection(name)
}

// openSection returns the named section, creating and recording it on
// first sight. A repeated name reuses the existing section without a
// second header line.
func (f *CfgFile) openSection(name string) *Section {
	if s, ok := f.sections[name]; ok {
		return s
	}
	if f.sections == nil {
		f.sections = make(map[string]*Section)
	}
	s := new(Section)
	f.sections[name] = s
	f.names = append(f.names, name)
	f.lines = append(f.lines, line{kind: lineSection, text: name})
	return s
}

// RemoveSection removes the named section together with its header line,
// so a later save drops the whole group. If the section does not exist,
// RemoveSection does nothing.
func (f *CfgFile) RemoveSection(name string) {
	if _, ok := f.sections[name]; !ok {
		return
	}
	delete(f.sections, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
	f.lines = removeLine(f.lines, lineSection, name)
}

// Section returns the named section, live for reading and mutation. It
// returns an error wrapping ErrSectionNotFound if the section does not
// exist.
func (f *CfgFile) Section(name string) (*Section, error) {
	if f == nil {
		return nil, fmt.Errorf("section %q: %w", name, ErrSectionNotFound)
	}
	s, ok := f.sections[name]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, ErrSectionNotFound)
	}
	return s, nil
}

// HasSection reports whether the named section exists.
func (f *CfgFile) HasSection(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.sections[name]
	return ok
}

// Sections returns a snapshot of the section names in insertion order.
func (f *CfgFile) Sections() []string {
	if f == nil || len(f.names) == 0 {
		return nil
	}
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Clear removes all sections and lines. The binding and any recorded
// error stay.
func (f *CfgFile) Clear() { f.erase() }

func (f *CfgFile) erase() {
	f.sections = nil
	f.names = nil
	f.lines = nil
}

// read parses sectioned-dialect text. A [name] line opens a section whose
// body runs to the next blank line or end of input; body lines containing
// '=' become that section's pairs (the last occurrence of a key wins), and
// other body lines are skipped. The terminating blank is consumed, not
// recorded: the writer reintroduces the separator. Comments, blanks, and
// headers outside bodies are recorded in position; anything else is
// skipped.
func (f *CfgFile) read(r io.Reader) error {
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
		case isSectionHeader(ln):
			sec := f.openSection(strings.TrimSpace(ln[1 : len(ln)-1]))
			for s.Scan() {
				lineno++
				body := strings.TrimSpace(s.Text())
				if body == "" {
					break
				}
				key, value, ok := strings.Cut(body, "=")
				if !ok {
					continue
				}
				key = strings.TrimSpace(key)
				if key == "" {
					continue
				}
				sec.Put(key, StringValue(strings.TrimSpace(value)))
			}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineno+1, err)
	}
	return nil
}

func isSectionHeader(ln string) bool {
	return len(ln) >= 2 && ln[0] == '[' && ln[len(ln)-1] == ']'
}

func (f *CfgFile) write(w io.Writer) error {
	_, err := w.Write(f.appendText(nil))
	return err
}

func (f *CfgFile) appendText(buf []byte) []byte {
	for _, ln := range f.lines {
		switch ln.kind {
		case lineBlank:
			buf = append(buf, '\n')
		case lineComment:
			buf = append(buf, ln.text...)
			buf = append(buf, '\n')
		case lineSection:
			sec, ok := f.sections[ln.text]
			if !ok {
				continue
			}
			buf = append(buf, '[')
			buf = append(buf, ln.text...)
			buf = append(buf, "]\n"...)
			for _, key := range sec.keys {
				buf = appendPair(buf, key, *sec.values[key])
			}
			buf = append(buf, '\n')
		}
	}
	return buf
}

// MarshalText serializes the document, reproducing comment and blank lines
// between the current section groups.
func (f *CfgFile) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	return f.appendText(nil), nil
}

// UnmarshalText parses data, replacing the document's content. The binding
// and any recorded error stay.
func (f *CfgFile) UnmarshalText(data []byte) error {
	f.erase()
	if err := f.read(bytes.NewReader(data)); err != nil {
		f.erase()
		return err
	}
	return nil
}
