// Copyright 2024 Oussama Ben Gatrane
// SPDX-License-Identifier: MIT

package configparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIniDecode(t *testing.T) {
	type settings struct {
		Name  string  `config:"app_name"`
		Max   int     `config:"max_connections"`
		Debug bool    `config:"debug_mode"`
		Ratio float64 `config:"ratio"`
	}
	f := NewIniFile()
	source := "app_name = Demo\nmax_connections = 100\ndebug_mode = true\nratio = 2.5\n"
	if err := f.UnmarshalText([]byte(source)); err != nil {
		t.Fatal(err)
	}
	var got settings
	if err := f.Decode(&got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := settings{Name: "Demo", Max: 100, Debug: true, Ratio: 2.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want +got):\n%s", diff)
	}
}

func TestCfgDecode(t *testing.T) {
	type appInfo struct {
		Name    string
		Version int
	}
	type settings struct {
		Debug bool `config:"debug_mode"`
		Max   int  `config:"max_connections"`
	}
	type document struct {
		AppInfo  appInfo
		Settings settings
	}
	f := NewCfgFile()
	source := "[AppInfo]\nname = Demo\nversion = 1\n\n[Settings]\ndebug_mode = true\nmax_connections = 100\n"
	if err := f.UnmarshalText([]byte(source)); err != nil {
		t.Fatal(err)
	}
	var got document
	if err := f.Decode(&got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := document{
		AppInfo:  appInfo{Name: "Demo", Version: 1},
		Settings: settings{Debug: true, Max: 100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want +got):\n%s", diff)
	}
}

func TestSectionDecodeIntoMap(t *testing.T) {
	f := NewIniFile()
	if err := f.UnmarshalText([]byte("a = 1\nb = two\n")); err != nil {
		t.Fatal(err)
	}
	got := make(map[string]string)
	if err := f.Decode(&got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]string{"a": "1", "b": "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want +got):\n%s", diff)
	}
}

func TestDecodeBadValue(t *testing.T) {
	f := NewIniFile()
	if err := f.UnmarshalText([]byte("count = many\n")); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Count int
	}
	if err := f.Decode(&got); err == nil {
		t.Fatal("Decode succeeded with a non-numeric int field")
	}
}

func TestDecodeNil(t *testing.T) {
	got := struct {
		Host string `config:"host"`
	}{Host: "unchanged"}
	if err := (*IniFile)(nil).Decode(&got); err != nil {
		t.Errorf("Decode on nil flat document: %v", err)
	}
	if err := (*CfgFile)(nil).Decode(&got); err != nil {
		t.Errorf("Decode on nil sectioned document: %v", err)
	}
	if err := (*Section)(nil).Decode(&got); err != nil {
		t.Errorf("Decode on nil section: %v", err)
	}
	if got.Host != "unchanged" {
		t.Errorf("Host = %q; want %q untouched", got.Host, "unchanged")
	}
}
