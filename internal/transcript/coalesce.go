package transcript

import (
	"log/slog"

	"scribe/internal/logging"
	"scribe/internal/srt"
)

// Coalesce flattens transcript chunks into subtitle cues. Each chunk's offset
// shifts its fragments onto the shared timeline first; the flattened sequence
// is then walked in chunk order, and every maximal run of consecutive
// fragments carrying identical text collapses into a single cue spanning from
// the run's first start to its last end.
//
// Recognizers re-emit the same short phrase across overlapping micro-fragments
// while a live transcript stabilizes; collapsing equal runs keeps one cue per
// phrase instead of flooding the track with near-duplicates. Fragments are
// never re-sorted by time, and adjacent runs are not checked for overlap here.
func Coalesce(chunks []Chunk, logger *slog.Logger) []srt.Cue {
	fragments := flatten(chunks, logger)

	var cues []srt.Cue
	var current srt.Cue
	open := false
	for _, fragment := range fragments {
		if open && current.Text != fragment.Text {
			current.Index = len(cues) + 1
			cues = append(cues, current)
			current = srt.Cue{Start: fragment.Start, End: fragment.End, Text: fragment.Text}
			continue
		}
		if !open {
			current = srt.Cue{Start: fragment.Start, Text: fragment.Text}
			open = true
		}
		current.End = fragment.End
	}
	if open {
		current.Index = len(cues) + 1
		cues = append(cues, current)
	}
	return cues
}

// flatten concatenates all fragments across chunks in chunk order then
// fragment order, applying each chunk's offset additively. A chunk name that
// carries no offset is logged and contributes its fragments unshifted.
func flatten(chunks []Chunk, logger *slog.Logger) []Fragment {
	var fragments []Fragment
	for _, chunk := range chunks {
		offset, ok := chunk.Offset()
		if !ok && logger != nil {
			logger.Info("chunk name carries no timeline offset",
				logging.String("chunk", chunk.Name))
		}
		for _, fragment := range chunk.Fragments {
			fragment.Start += offset
			fragment.End += offset
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}
