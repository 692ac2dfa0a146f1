// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

// A line records one line of a document's original layout. Comment entries
// hold the trimmed comment text, value entries hold only the key (the
// current value is looked up at write time), and section entries hold the
// bracket-stripped section name. Blank entries hold nothing.
type line struct {
	kind lineKind
	text string
}

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineComment
	lineValue
	lineSection
)

// removeLine removes the first entry of the given kind whose text matches.
func removeLine(lines []line, kind lineKind, text string) []line {
	for i, ln := range lines {
		if ln.kind == kind && ln.text == text {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// appendPair appends one serialized "key = value" line.
func appendPair(buf []byte, key string, v Value) []byte {
	buf = append(buf, key...)
	buf = append(buf, " = "...)
	buf = append(buf, v.String()...)
	return append(buf, '\n')
}
