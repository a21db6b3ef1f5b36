package srt

import (
	"errors"
	"testing"

	"scribe/internal/timecode"
)

func TestCueBlock(t *testing.T) {
	cue := Cue{Index: 3, Start: 2648, End: 2650.5, Text: "hello there"}
	want := "3\n00:44:08,000 --> 00:44:10,500\nhello there\n"
	if got := cue.Block(); got != want {
		t.Fatalf("Block() = %q, want %q", got, want)
	}
}

func TestParseBlock(t *testing.T) {
	cue, err := ParseBlock("12\n00:00:01,250 --> 00:00:03,000\nfirst line\nsecond line\n")
	if err != nil {
		t.Fatalf("ParseBlock returned error: %v", err)
	}
	if cue.Index != 12 {
		t.Errorf("unexpected index: %d", cue.Index)
	}
	if cue.Start != 1.25 || cue.End != 3 {
		t.Errorf("unexpected range: %v -> %v", cue.Start, cue.End)
	}
	if cue.Text != "first line\nsecond line" {
		t.Errorf("unexpected text: %q", cue.Text)
	}
}

func TestParseBlockRejectsTooFewLines(t *testing.T) {
	if _, err := ParseBlock("1"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseBlockRejectsNonNumericIndex(t *testing.T) {
	if _, err := ParseBlock("one\n00:00:01,000 --> 00:00:02,000\nhi"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseBlockRejectsBadTimeRange(t *testing.T) {
	if _, err := ParseBlock("1\n00:00:01,000 -> 00:00:02,000\nhi"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for missing separator, got %v", err)
	}
	if _, err := ParseBlock("1\n00:00:01,000 --> 00:00:02,000 --> 00:00:03,000\nhi"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for three tokens, got %v", err)
	}
}

func TestParseBlockSurfacesTimestampErrors(t *testing.T) {
	_, err := ParseBlock("1\n00:00:01,000 --> 00:00:0,000\nhi")
	if !errors.Is(err, timecode.ErrFormat) {
		t.Fatalf("expected timecode.ErrFormat, got %v", err)
	}
}

func TestBlockParseBlockRoundTrip(t *testing.T) {
	in := Cue{Index: 7, Start: 0.001, End: 86399.999, Text: "line a\nline b"}
	out, err := ParseBlock(in.Block())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed cue: got %+v want %+v", out, in)
	}
}
