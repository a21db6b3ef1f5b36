package srt

import (
	"fmt"
	"math"
	"strings"
)

// Render serializes cues into a full SRT document: blocks separated by one
// blank line, leading and trailing whitespace trimmed once for the whole
// track.
func Render(cues []Cue) string {
	blocks := make([]string, 0, len(cues))
	for _, cue := range cues {
		blocks = append(blocks, cue.Block())
	}
	return strings.TrimSpace(strings.Join(blocks, "\n"))
}

// Parse splits an SRT document on blank-line boundaries and parses every
// non-empty block. A malformed block fails the whole parse and the error names
// the block's 1-based position; cues are never silently dropped.
func Parse(text string) ([]Cue, error) {
	content := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}
	var cues []Cue
	position := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		position++
		cue, err := ParseBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", position, err)
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

// Bounds reports the earliest start and latest end across the track, or zeros
// for an empty track.
func Bounds(cues []Cue) (first, last float64) {
	if len(cues) == 0 {
		return 0, 0
	}
	first = math.Inf(1)
	for _, cue := range cues {
		if cue.Start < first {
			first = cue.Start
		}
		if cue.End > last {
			last = cue.End
		}
	}
	return first, last
}
