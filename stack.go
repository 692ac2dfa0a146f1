// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"errors"
	"fmt"
)

// A Stack is a list of flat-dialect documents in descending order of
// precedence: lookups answer from the first document that knows the key.
// Nil elements are treated as empty documents.
type Stack []*IniFile

// OpenStack loads the files at the given paths into a Stack. If the
// returned error is nil, the stack's length equals the number of paths.
// OpenStack stops on the first error, but a missing file is not an error:
// its slot is left nil so lower-precedence files still apply.
func OpenStack(paths ...string) (Stack, error) {
	st := make(Stack, 0, len(paths))
	for _, p := range paths {
		f, err := OpenIniFile(p)
		if errors.Is(err, ErrFileNotFound) {
			st = append(st, nil)
			continue
		}
		if err != nil {
			return st, fmt.Errorf("open stack: %w", err)
		}
		st = append(st, f)
	}
	return st, nil
}

// Lookup returns the value from the highest-precedence document that has
// key and reports whether any does.
func (st Stack) Lookup(key string) (Value, bool) {
	for _, f := range st {
		if v, ok := f.Lookup(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Get returns the value from the highest-precedence document that has key.
// It returns an error wrapping ErrKeyNotFound if no document has it.
func (st Stack) Get(key string) (Value, error) {
	if v, ok := st.Lookup(key); ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
}

// Has reports whether any document in the stack has key.
func (st Stack) Has(key string) bool {
	_, ok := st.Lookup(key)
	return ok
}

// Keys returns every key known to the stack, ordered by precedence and
// first occurrence.
func (st Stack) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, f := range st {
		for _, k := range f.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Put sets key on the highest-precedence document and deletes it from all
// others, so the new value wins regardless of what lower files say. Put
// panics if the stack is empty. If the first element is nil, Put allocates
// a new unbound document in its place.
func (st Stack) Put(key string, v Value) {
	if st[0] == nil {
		st[0] = NewIniFile()
	}
	st[0].Put(key, v)
	st[1:].Delete(key)
}

// Delete removes key from every document in the stack.
func (st Stack) Delete(key string) {
	for _, f := range st {
		if f != nil {
			f.Delete(key)
		}
	}
}
