package skillmeta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseValid(t *testing.T) {
	data := []byte(`name: weather-skill
description: Reports the weather
author: acme
tags:
  - weather
  - daily
`)

	meta, issues, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if meta.Name != "weather-skill" {
		t.Errorf("Name = %q, want weather-skill", meta.Name)
	}
	if len(meta.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", meta.Tags)
	}
}

func TestParseMissingName(t *testing.T) {
	data := []byte("description: no name here\n")

	_, issues, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected a validation issue for missing name")
	}
}

func TestParseWrongTagType(t *testing.T) {
	data := []byte("name: x-skill\ntags: notalist\n")

	meta, issues, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected a validation issue for non-array tags")
	}
	// The type mismatch also defeats the typed decode, so no meta comes back.
	if meta != nil {
		t.Errorf("meta = %+v, want nil", meta)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	meta, issues, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta != nil || issues != nil {
		t.Errorf("got meta=%v issues=%v, want nil/nil", meta, issues)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "name: timer-skill\ndescription: Set timers\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, issues, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if meta.Name != "timer-skill" || meta.Description != "Set timers" {
		t.Errorf("got %+v", meta)
	}
}
