package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePayload = `{
  "text": "hi hi bye",
  "segments": [
    {"start": 0.0, "end": 1.0, "text": "hi", "confidence": 0.92},
    {"start": 1.0, "end": 2.0, "text": "hi"},
    {"start": 2.0, "end": 3.0, "text": "bye"}
  ]
}`

func TestDecodePayload(t *testing.T) {
	payload, err := DecodePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if len(payload.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(payload.Segments))
	}
	if payload.Segments[2].Text != "bye" || payload.Segments[2].Start != 2 {
		t.Fatalf("unexpected segment: %+v", payload.Segments[2])
	}
}

func TestDecodePayloadRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodePayload([]byte(`{"segments": [}`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadChunkUsesBaseNameForOffset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "speech_recognition_result_segment_004408_004410.json")
	if err := os.WriteFile(path, []byte(samplePayload), 0o644); err != nil {
		t.Fatalf("write chunk: %v", err)
	}

	chunk, err := LoadChunk(path)
	if err != nil {
		t.Fatalf("LoadChunk returned error: %v", err)
	}
	if chunk.Name != filepath.Base(path) {
		t.Fatalf("unexpected chunk name: %q", chunk.Name)
	}
	offset, ok := chunk.Offset()
	if !ok || offset != 2648 {
		t.Fatalf("expected 2648s offset, got (%v, %v)", offset, ok)
	}
}

func TestLoadChunkNamesOffendingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad_000000_000001.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write chunk: %v", err)
	}
	_, err := LoadChunk(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "bad_000000_000001.json"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to name %q, got %q", want, err)
	}
}

func TestCollectChunksOrdersLexicographically(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{"segments":[]}`), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("result_001000_002000.json")
	write("result_000000_001000.json")
	if err := os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write decoy: %v", err)
	}

	chunks, err := CollectChunks(dir)
	if err != nil {
		t.Fatalf("CollectChunks returned error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Name != "result_000000_001000.json" {
		t.Fatalf("unexpected order: %q first", chunks[0].Name)
	}
}
