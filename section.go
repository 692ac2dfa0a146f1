// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import "fmt"

// A Section is an insertion-ordered mapping from unique string keys to
// values. Iteration follows the order keys were first created, never map
// order. The zero Section is empty and ready to use.
//
// Sections are not safe for concurrent use; callers that share a section
// across goroutines must serialize access themselves.
type Section struct {
	keys   []string
	values map[string]*Value
}

// add appends a new key. The caller must have checked that key is absent.
func (s *Section) add(key string, v Value) *Value {
	if s.values == nil {
		s.values = make(map[string]*Value)
	}
	s.keys = append(s.keys, key)
	s.values[key] = &v
	return &v
}

// Insert adds key with value v. If key already exists, Insert does
// nothing: the first writer wins.
func (s *Section) Insert(key string, v Value) {
	if _, ok := s.values[key]; ok {
		return
	}
	s.add(key, v)
}

// Update replaces the value of an existing key in place. If key does not
// exist, Update does nothing.
func (s *Section) Update(key string, v Value) {
	if p, ok := s.values[key]; ok {
		*p = v
	}
}

// Put adds key with value v, replacing any existing value. An existing key
// keeps its position in the iteration order.
func (s *Section) Put(key string, v Value) {
	if p, ok := s.values[key]; ok {
		*p = v
		return
	}
	s.add(key, v)
}

// GetOrCreate returns a mutable reference to the value for key. If key
// does not exist it is created with empty text, appended to the iteration
// order exactly once.
func (s *Section) GetOrCreate(key string) *Value {
	if p, ok := s.values[key]; ok {
		return p
	}
	return s.add(key, Value{})
}

// Get returns the value for key. It returns an error wrapping
// ErrKeyNotFound if key does not exist.
func (s *Section) Get(key string) (Value, error) {
	if s == nil {
		return Value{}, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
	}
	p, ok := s.values[key]
	if !ok {
		return Value{}, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
	}
	return *p, nil
}

// Lookup returns the value for key and reports whether it exists.
func (s *Section) Lookup(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	p, ok := s.values[key]
	if !ok {
		return Value{}, false
	}
	return *p, true
}

// Pop removes key and returns the value it held. It returns an error
// wrapping ErrKeyNotFound if key does not exist.
func (s *Section) Pop(key string) (Value, error) {
	p, ok := s.values[key]
	if !ok {
		return Value{}, fmt.Errorf("pop %q: %w", key, ErrKeyNotFound)
	}
	s.remove(key)
	return *p, nil
}

// Delete removes key. If key does not exist, Delete does nothing.
func (s *Section) Delete(key string) {
	if _, ok := s.values[key]; ok {
		s.remove(key)
	}
}

func (s *Section) remove(key string) {
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether key exists.
func (s *Section) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Len returns the number of keys.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns a snapshot of the keys in insertion order. The returned
// slice is a copy, so ranging over it while mutating the section is safe.
func (s *Section) Keys() []string {
	if s == nil || len(s.keys) == 0 {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Clear removes all keys.
func (s *Section) Clear() {
	s.keys = nil
	s.values = nil
}
