// Package srt owns the subtitle track data model: the Cue value type, whole
// track serialization and parsing, and the time-range replacement merge used
// to fold a freshly generated track into an existing one.
//
// A track is an ordered sequence of non-overlapping cues and its only identity
// at rest is its serialized text form; parsing and rendering here are the only
// format-facing boundary in the repository.
package srt
