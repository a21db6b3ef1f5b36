// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no scribe-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//   - Format: container-level metadata (duration, size)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
//
// Helper methods on Result answer the questions scribe cares about: does
// the container carry audio, and how long is it.
package ffprobe
