package main

import (
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/testsupport"
)

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.srt")
	testsupport.WriteFile(t, path, existingTrack)

	out, err := runCommand(t, "inspect", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "old cue") || !strings.Contains(out, "survivor") {
		t.Fatalf("cue text missing from table:\n%s", out)
	}
	if !strings.Contains(out, "2 cues, 00:00:00,000 - 00:00:07,000") {
		t.Fatalf("summary line missing:\n%s", out)
	}
}

func TestInspectCommandEmptyTrack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.srt")
	testsupport.WriteFile(t, path, "")

	out, err := runCommand(t, "inspect", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Track contains no cues") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestInspectCommandMalformedTrack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.srt")
	testsupport.WriteFile(t, path, "garbage")

	if _, err := runCommand(t, "inspect", path); err == nil {
		t.Fatal("expected parse error")
	}
}
