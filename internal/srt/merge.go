package srt

import (
	"fmt"
	"sort"
)

// Merge folds the cues of next into existing by time-range replacement. Each
// next cue, taken in its original order, evicts every existing cue whose
// interval strictly overlaps its own (touching endpoints are not overlap), is
// inserted, and the working set is re-sorted by start time and re-indexed as a
// 1-based sequence. Re-sorting after every insertion keeps conflict resolution
// in next's original order when several new cues contend for the same region.
//
// Every next cue appears in the result unmodified apart from its index, and so
// does every existing cue that no next cue overlaps. Overlapping existing cues
// are discarded whole, never trimmed or split.
func Merge(existing, next []Cue) []Cue {
	merged := append([]Cue(nil), existing...)
	for _, cue := range next {
		kept := make([]Cue, 0, len(merged)+1)
		for _, candidate := range merged {
			if candidate.Start < cue.End && cue.Start < candidate.End {
				continue
			}
			kept = append(kept, candidate)
		}
		kept = append(kept, cue)
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
		for i := range kept {
			kept[i].Index = i + 1
		}
		merged = kept
	}
	return merged
}

// MergeTracks parses two serialized tracks, merges the second into the first,
// and renders the result. Parse failures surface before anything is merged so
// callers can leave the existing track untouched.
func MergeTracks(existingText, nextText string) (string, error) {
	existing, err := Parse(existingText)
	if err != nil {
		return "", fmt.Errorf("parse existing track: %w", err)
	}
	next, err := Parse(nextText)
	if err != nil {
		return "", fmt.Errorf("parse new track: %w", err)
	}
	return Render(Merge(existing, next)), nil
}
