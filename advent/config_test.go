package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, contents string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing.ini"))
	if err != nil {
		t.Fatalf("missing config: %s", err)
	}
	if got, want := cfg.inputPath(1), "day1.txt"; got != want {
		t.Errorf("default inputPath(1): got %q; want %q", got, want)
	}

	name := filepath.Join(dir, "advent.ini")
	writeFile(t, name, "[inputs]\ndir = /srv/puzzles\n")
	cfg, err = loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.inputPath(1), "/srv/puzzles/day1.txt"; got != want {
		t.Errorf("inputPath(1): got %q; want %q", got, want)
	}

	writeFile(t, name, "[inputs]\ndir = inputs\n")
	cfg, err = loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.inputPath(12), filepath.Join("inputs", "day12.txt"); got != want {
		t.Errorf("inputPath(12): got %q; want %q", got, want)
	}

	writeFile(t, name, "[other]\nx = y\n")
	cfg, err = loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.inputDir != "" {
		t.Errorf("got inputDir %q; want empty", cfg.inputDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "advent.ini")
	for _, contents := range []string{
		"[inputs]\ndir =\n",
		"[inputs\ndir = x\n",
	} {
		writeFile(t, name, contents)
		if _, err := loadConfig(name); err == nil {
			t.Errorf("loadConfig(%q): got nil error", contents)
		}
	}
}
