// Package whisper drives the external speech recognition tooling.
//
// This package handles:
//   - Audio span extraction with ffmpeg (mono 16kHz WAV)
//   - Transcriber invocation producing timestamped JSON results
//
// Result files are named after the span they cover so downstream
// processing can recover each chunk's timeline offset from the filename.
package whisper
