// Package pipeline orchestrates subtitle generation end to end: probe the
// source audio, plan transcription spans, run (or replay from cache) the
// speech recognizer per span, coalesce the timed fragments into cues, and
// write the SRT track atomically under a file lock.
//
// The pure operations Generate and MergeIntoExisting are exposed separately
// so callers holding transcription results in hand can skip the tool-driven
// path.
package pipeline
