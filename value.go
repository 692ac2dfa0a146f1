// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"strconv"
	"unicode/utf8"
)

// A Value is a single configuration value. The canonical representation is
// always text: typed constructors format on write and typed accessors parse
// on read, so a value survives a save/load cycle no matter which typed view
// produced it. The zero Value has empty text.
type Value struct {
	text string
}

// StringValue returns a value holding s verbatim.
func StringValue(s string) Value { return Value{text: s} }

// IntValue returns a value holding the decimal representation of i.
func IntValue(i int) Value { return Value{text: strconv.Itoa(i)} }

// Float64Value returns a value holding the shortest decimal text that
// parses back to exactly f.
func Float64Value(f float64) Value {
	return Value{text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Float32Value returns a value holding the shortest decimal text that
// parses back to exactly f.
func Float32Value(f float32) Value {
	return Value{text: strconv.FormatFloat(float64(f), 'g', -1, 32)}
}

// BoolValue returns a value holding "true" or "false".
func BoolValue(b bool) Value {
	if b {
		return Value{text: "true"}
	}
	return Value{text: "false"}
}

// CharValue returns a value holding the single character r.
func CharValue(r rune) Value { return Value{text: string(r)} }

// String returns the canonical text. It never fails: every value is text
// first.
func (v Value) String() string { return v.text }

// Int parses the value as a decimal integer.
func (v Value) Int() (int, error) {
	i, err := strconv.Atoi(v.text)
	if err != nil {
		return 0, &ConversionError{Type: "int", Text: v.text, Err: err}
	}
	return i, nil
}

// Float64 parses the value as a double-precision float.
func (v Value) Float64() (float64, error) {
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, &ConversionError{Type: "float64", Text: v.text, Err: err}
	}
	return f, nil
}

// Float32 parses the value as a single-precision float.
func (v Value) Float32() (float32, error) {
	f, err := strconv.ParseFloat(v.text, 32)
	if err != nil {
		return 0, &ConversionError{Type: "float32", Text: v.text, Err: err}
	}
	return float32(f), nil
}

// Bool parses the value as a boolean. Only the exact texts "true" and
// "false" convert.
func (v Value) Bool() (bool, error) {
	switch v.text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ConversionError{Type: "bool", Text: v.text}
}

// Char returns the value's single character. Values holding zero, several,
// or malformed characters do not convert.
func (v Value) Char() (rune, error) {
	r, size := utf8.DecodeRuneInString(v.text)
	if size == 0 || size != len(v.text) || (r == utf8.RuneError && size == 1) {
		return 0, &ConversionError{Type: "char", Text: v.text}
	}
	return r, nil
}

// MarshalText returns the canonical text.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.text), nil
}

// UnmarshalText replaces the value's text with data.
func (v *Value) UnmarshalText(data []byte) error {
	v.text = string(data)
	return nil
}
