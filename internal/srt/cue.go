package srt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scribe/internal/timecode"
)

// ErrParse indicates a structurally malformed subtitle block or track.
var ErrParse = errors.New("srt: malformed block")

// timeSeparator is the literal token between the start and end timestamps of a
// cue's time-range line.
const timeSeparator = " --> "

// Cue is one subtitle entry: a 1-based sequence index, a time range in
// fractional seconds, and one or more lines of text. Within a track cues are
// ordered by start time and indices form a contiguous 1-based sequence
// matching that order. Start never exceeds End.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Block renders the cue as one SRT block, trailing newline included.
func (c Cue) Block() string {
	return fmt.Sprintf("%d\n%s%s%s\n%s\n",
		c.Index,
		timecode.FormatSeconds(c.Start), timeSeparator, timecode.FormatSeconds(c.End),
		c.Text)
}

// ParseBlock parses a single SRT block. Line 0 must be a numeric index, line 1
// the time range, and every remaining line belongs to the cue text. The error
// wraps ErrParse when the block structure is wrong and timecode.ErrFormat when
// a timestamp inside an otherwise well-formed block does not parse.
func ParseBlock(block string) (Cue, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("%w: expected an index line and a time-range line, got %d line(s)", ErrParse, len(lines))
	}
	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("%w: index line %q is not numeric", ErrParse, strings.TrimSpace(lines[0]))
	}
	rangeParts := strings.Split(lines[1], timeSeparator)
	if len(rangeParts) != 2 {
		return Cue{}, fmt.Errorf("%w: time range %q", ErrParse, lines[1])
	}
	start, err := timecode.ParseSeconds(rangeParts[0])
	if err != nil {
		return Cue{}, fmt.Errorf("cue start: %w", err)
	}
	end, err := timecode.ParseSeconds(rangeParts[1])
	if err != nil {
		return Cue{}, fmt.Errorf("cue end: %w", err)
	}
	return Cue{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.TrimSpace(strings.Join(lines[2:], "\n")),
	}, nil
}
