// Package transcript models the raw output of the speech-recognition step:
// timestamped text fragments grouped into per-invocation chunks, each chunk
// optionally carrying a timeline offset encoded in its source name. The
// coalescer turns that fragment stream into deduplicated subtitle cues.
package transcript
