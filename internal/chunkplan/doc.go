// Package chunkplan turns the checkpoint and segment values accepted on the
// command line into the ordered list of audio spans handed to the
// transcription service. Checkpoints cut the full audio at given positions;
// segments name explicit ranges; an interval pattern like "10m" expands to
// evenly spaced checkpoints.
package chunkplan
