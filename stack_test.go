// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStackPrecedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.ini")
	system := filepath.Join(dir, "system.ini")
	if err := os.WriteFile(user, []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(system, []byte("theme = light\nlang = en\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := OpenStack(user, filepath.Join(dir, "missing.ini"), system)
	if err != nil {
		t.Fatalf("OpenStack: %v", err)
	}
	if len(st) != 3 {
		t.Fatalf("len(stack) = %d; want 3", len(st))
	}
	if st[1] != nil {
		t.Error("missing file should leave a nil slot")
	}

	v, ok := st.Lookup("theme")
	if !ok || v.String() != "dark" {
		t.Errorf("Lookup(\"theme\") = %q, %t; want \"dark\", true", v, ok)
	}
	v, err = st.Get("lang")
	if err != nil || v.String() != "en" {
		t.Errorf("Get(\"lang\") = %q, %v; want \"en\", <nil>", v, err)
	}
	if _, err := st.Get("ghost"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(\"ghost\") error = %v; want ErrKeyNotFound", err)
	}
	if diff := cmp.Diff([]string{"theme", "lang"}, st.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
}

func TestStackPut(t *testing.T) {
	dir := t.TempDir()
	system := filepath.Join(dir, "system.ini")
	if err := os.WriteFile(system, []byte("lang = en\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := OpenStack(filepath.Join(dir, "user.ini"), system)
	if err != nil {
		t.Fatalf("OpenStack: %v", err)
	}

	st.Put("lang", StringValue("fr"))
	if st[0] == nil {
		t.Fatal("Put did not allocate the first document")
	}
	v, ok := st[0].Lookup("lang")
	if !ok || v.String() != "fr" {
		t.Errorf("first document lang = %q, %t; want \"fr\", true", v, ok)
	}
	if st[1].Has("lang") {
		t.Error("Put left the key in a lower-precedence document")
	}

	st.Delete("lang")
	if st.Has("lang") {
		t.Error("key still present after Delete")
	}
}

func TestStackNil(t *testing.T) {
	st := Stack{nil, nil}
	if _, ok := st.Lookup("x"); ok {
		t.Error("Lookup on all-nil stack reported an entry")
	}
	if got := st.Keys(); len(got) > 0 {
		t.Errorf("Keys() = %q; want empty", got)
	}
	st.Put("k", IntValue(1))
	if !st.Has("k") {
		t.Error("Put on all-nil stack did not take")
	}
}

func TestStackStopsOnError(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "big.ini")
	// A line past the scanner's token limit fails the read, which must
	// abort OpenStack rather than leave a silent nil slot.
	data := []byte("k = " + strings.Repeat("x", 100000))
	if err := os.WriteFile(bad, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenStack(bad); !errors.Is(err, ErrFileRead) {
		t.Errorf("OpenStack error = %v; want ErrFileRead", err)
	}
}
