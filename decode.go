// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode fills v, which must be a pointer to a struct or map, from the
// section's current pairs. Fields are matched by name case-insensitively,
// overridable with a `config:"name"` tag; text converts weakly into
// numeric and boolean fields, so "100" fills an int.
func (s *Section) Decode(v any) error {
	if err := decode(s.pairs(), v); err != nil {
		return fmt.Errorf("decode section: %w", err)
	}
	return nil
}

// pairs returns the section's current contents as a plain map.
func (s *Section) pairs() map[string]string {
	if s == nil {
		return nil
	}
	m := make(map[string]string, len(s.keys))
	for k, p := range s.values {
		m[k] = p.String()
	}
	return m
}

// Decode fills v from the document's pairs, like Section.Decode.
func (f *IniFile) Decode(v any) error {
	if f == nil {
		return nil
	}
	return f.sec.Decode(v)
}

// Decode fills v, which must be a pointer to a struct or map, from the
// whole document: each section becomes a nested struct or map value,
// matched by section name.
func (f *CfgFile) Decode(v any) error {
	if f == nil {
		return nil
	}
	m := make(map[string]map[string]string, len(f.names))
	for name, sec := range f.sections {
		m[name] = sec.pairs()
	}
	if err := decode(m, v); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func decode(input, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "config",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
