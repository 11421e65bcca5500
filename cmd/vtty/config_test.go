package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadFileConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (fileConfig{}) {
		t.Fatalf("got %#v, want the zero value", cfg)
	}
}

func TestLoadFileConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "scrollback_lines: 1234\ntarget_framerate: 30\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScrollbackLines != 1234 || cfg.TargetFramerate != 30 {
		t.Fatalf("got %#v, want ScrollbackLines=1234 TargetFramerate=30", cfg)
	}
}

func TestLoadFileConfigMalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("not: [valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFileConfig(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
