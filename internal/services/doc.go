// Package services defines shared utilities consumed by the transcription
// pipeline and its external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     messages consistent across pipeline stages.
package services
