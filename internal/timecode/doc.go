// Package timecode converts between fractional-second durations and the
// textual time formats scribe deals in: the fixed-width "HH:MM:SS,mmm" SRT
// timestamp, the "[hh:][mm:]ss" clock values accepted on the command line, and
// the compact "hhmmss" digits embedded in chunk result file names.
//
// The package truncates sub-millisecond remainders and never rounds up, so a
// value survives a format/parse round trip to millisecond precision.
package timecode
