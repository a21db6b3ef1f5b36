package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Payload mirrors the transcriber's JSON output: an ordered list of timed
// segments.
type Payload struct {
	Segments []Fragment `json:"segments"`
}

// DecodePayload parses one chunk result document.
func DecodePayload(data []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Payload{}, fmt.Errorf("parse transcription json: %w", err)
	}
	return payload, nil
}

// LoadChunk reads a chunk result file. The base file name becomes the chunk
// name so the timeline offset can be recovered from it.
func LoadChunk(path string) (Chunk, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Chunk{}, fmt.Errorf("read chunk %s: %w", name, err)
	}
	payload, err := DecodePayload(data)
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk %s: %w", name, err)
	}
	return Chunk{Name: name, Fragments: payload.Segments}, nil
}

// CollectChunks loads every ".json" chunk result in dir, ordered
// lexicographically by file name so time-stamped chunk names process in
// timeline order.
func CollectChunks(dir string) ([]Chunk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read chunk directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	chunks := make([]Chunk, 0, len(names))
	for _, name := range names {
		chunk, err := LoadChunk(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
