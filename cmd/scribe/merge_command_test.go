package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/testsupport"
)

const existingTrack = "1\n00:00:00,000 --> 00:00:02,000\nold cue\n\n2\n00:00:05,000 --> 00:00:07,000\nsurvivor\n"
const incomingTrack = "1\n00:00:01,000 --> 00:00:03,000\nreplacement\n"

func TestMergeCommandInPlace(t *testing.T) {
	dir := t.TempDir()
	existingPath := filepath.Join(dir, "existing.srt")
	nextPath := filepath.Join(dir, "next.srt")
	testsupport.WriteFile(t, existingPath, existingTrack)
	testsupport.WriteFile(t, nextPath, incomingTrack)

	out, err := runCommand(t, "merge", existingPath, nextPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote 2 cues to "+existingPath) {
		t.Fatalf("unexpected output: %s", out)
	}

	data, err := os.ReadFile(existingPath)
	if err != nil {
		t.Fatal(err)
	}
	track := string(data)
	if strings.Contains(track, "old cue") {
		t.Fatalf("overlapped cue should be gone:\n%s", track)
	}
	if !strings.Contains(track, "1\n00:00:01,000 --> 00:00:03,000\nreplacement") {
		t.Fatalf("replacement cue missing:\n%s", track)
	}
	if !strings.Contains(track, "2\n00:00:05,000 --> 00:00:07,000\nsurvivor") {
		t.Fatalf("survivor should be re-indexed to 2:\n%s", track)
	}
}

func TestMergeCommandToSeparateOutput(t *testing.T) {
	dir := t.TempDir()
	existingPath := filepath.Join(dir, "existing.srt")
	nextPath := filepath.Join(dir, "next.srt")
	outputPath := filepath.Join(dir, "merged.srt")
	testsupport.WriteFile(t, existingPath, existingTrack)
	testsupport.WriteFile(t, nextPath, incomingTrack)

	if _, err := runCommand(t, "merge", existingPath, nextPath, "--output", outputPath); err != nil {
		t.Fatal(err)
	}

	original, err := os.ReadFile(existingPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != existingTrack {
		t.Fatal("existing track should be untouched with --output")
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Fatalf("merged output missing: %v", err)
	}
}

func TestMergeCommandRejectsMalformedTrack(t *testing.T) {
	dir := t.TempDir()
	existingPath := filepath.Join(dir, "existing.srt")
	nextPath := filepath.Join(dir, "next.srt")
	testsupport.WriteFile(t, existingPath, "not a subtitle track")
	testsupport.WriteFile(t, nextPath, incomingTrack)

	if _, err := runCommand(t, "merge", existingPath, nextPath); err == nil {
		t.Fatal("expected parse error")
	}

	data, err := os.ReadFile(existingPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "not a subtitle track" {
		t.Fatal("existing file should be untouched after a failed merge")
	}
}
