// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

/*
Package configparser reads and writes simple configuration files in two
related dialects: a flat dialect of key/value lines, and a sectioned
dialect that groups key/value lines under [section] headers.

The package is designed for read-modify-write scenarios: a loaded document
remembers where its comment and blank lines sit, so editing a value and
saving reproduces the surrounding human formatting instead of rewriting
the file from scratch. Values are stored as text and converted on demand,
which keeps a document's contents identical across any number of
save/reload cycles regardless of which typed views were used in between.

# Flat syntax

A flat-dialect file is UTF-8 text made of key/value lines, comments, and
blanks:

	# server settings
	host = example.com
	port = 8080

A line whose first non-whitespace character is '#' is a comment. A line
containing '=' is split at the first '=' into a key and a value, both
trimmed of surrounding whitespace; the value may itself contain '='.
When the same key appears on several lines, the first value wins. Lines
that are neither blank, comment, nor key/value are skipped; loading never
fails on malformed content.

# Sectioned syntax

A sectioned-dialect file groups its pairs under bracketed headers, with a
blank line closing each group:

	# identity
	[AppInfo]
	name = Demo
	version = 1

	[Settings]
	debug_mode = true

A section's body is every line after its header up to the next blank line
or the end of input, so a blank line must separate consecutive sections.
Body lines containing '=' become the section's pairs; when a key repeats
within one body, the last value wins. Comments cannot appear inside a
body: a body line without '=' is skipped, whatever it looks like. Pairs
outside any section are skipped too. Repeated headers with the same name
merge into one section.

# Values

Every value is canonically text. The typed constructors (IntValue,
BoolValue, and friends) format into text, and the typed accessors (Int,
Bool, ...) parse out of it, reporting a *ConversionError when the text
does not suit the requested type. Booleans are strictly "true" or
"false", and a char is exactly one character.
*/
package configparser
