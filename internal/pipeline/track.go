package pipeline

import (
	"log/slog"

	"scribe/internal/srt"
	"scribe/internal/transcript"
)

// Generate coalesces chunk fragments into cues and renders the SRT track.
func Generate(chunks []transcript.Chunk, logger *slog.Logger) string {
	return srt.Render(transcript.Coalesce(chunks, logger))
}

// MergeIntoExisting merges a newly generated track into an existing one,
// replacing every existing cue the new cues overlap.
func MergeIntoExisting(existing, next string) (string, error) {
	return srt.MergeTracks(existing, next)
}
