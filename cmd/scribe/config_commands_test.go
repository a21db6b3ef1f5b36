package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(home, ".config", "scribe", "config.toml")
	if !strings.Contains(out, target) {
		t.Fatalf("output should name the target: %s", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[transcriber]") {
		t.Fatalf("sample config missing transcriber section:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := runCommand(t, "config", "init"); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "config", "init"); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("--overwrite should succeed: %v", err)
	}
}

func TestConfigInitCustomPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "custom", "scribe.toml")

	if _, err := runCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("custom target missing: %v", err)
	}
}

func TestConfigShowPrintsResolvedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[paths]", "[transcriber]", "model = 'tiny'"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}
