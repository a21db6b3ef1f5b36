package chunkplan

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"scribe/internal/logging"
	"scribe/internal/timecode"
)

// Span is one audio range to transcribe, in milliseconds from the start of the
// full audio.
type Span struct {
	StartMS int64
	EndMS   int64
}

// DurationMS returns the span length in milliseconds.
func (s Span) DurationMS() int64 {
	return s.EndMS - s.StartMS
}

// ErrConflictingFlags indicates both checkpoints and segments were supplied.
var ErrConflictingFlags = errors.New("chunkplan: checkpoints and segments are mutually exclusive")

var intervalPattern = regexp.MustCompile(`^[1-9]\d*[hms]$`)

// IsInterval reports whether value is a repeating-interval pattern such as
// "5s", "10m", or "1h".
func IsInterval(value string) bool {
	return intervalPattern.MatchString(strings.TrimSpace(value))
}

// Plan turns the raw checkpoint/segment command-line values into the ordered
// spans to transcribe. Exactly one of checkpoints and segments may be set;
// when neither is, the whole audio becomes a single span.
func Plan(checkpoints, segments string, totalMS int64, logger *slog.Logger) ([]Span, error) {
	checkpoints = strings.TrimSpace(checkpoints)
	segments = strings.TrimSpace(segments)
	switch {
	case checkpoints != "" && segments != "":
		return nil, ErrConflictingFlags
	case checkpoints != "":
		return FromCheckpoints(checkpoints, totalMS, logger)
	case segments != "":
		return ParseSegments(segments, totalMS, logger)
	default:
		return []Span{{StartMS: 0, EndMS: totalMS}}, nil
	}
}

// FromCheckpoints builds spans from cut points: an interval pattern generates
// evenly spaced checkpoints, anything else is a comma-separated list of
// "[hh:][mm:]ss" clock values. The resulting spans tile the audio from zero to
// its total duration with a boundary at every checkpoint.
func FromCheckpoints(raw string, totalMS int64, logger *slog.Logger) ([]Span, error) {
	var points []int64
	var err error
	if IsInterval(raw) {
		points, err = intervalCheckpoints(raw, totalMS)
	} else {
		points, err = parseCheckpointList(raw, totalMS, logger)
	}
	if err != nil {
		return nil, err
	}

	spans := make([]Span, 0, len(points)+1)
	previous := int64(0)
	for _, point := range points {
		spans = append(spans, Span{StartMS: previous, EndMS: point})
		previous = point
	}
	spans = append(spans, Span{StartMS: previous, EndMS: totalMS})
	return spans, nil
}

// intervalCheckpoints expands a pattern like "10m" into checkpoints every ten
// minutes. Audio shorter than one interval yields a single checkpoint at its
// end.
func intervalCheckpoints(pattern string, totalMS int64) ([]int64, error) {
	pattern = strings.TrimSpace(pattern)
	number, err := strconv.ParseInt(pattern[:len(pattern)-1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("interval pattern %q: %w", pattern, err)
	}
	var intervalMS int64
	switch pattern[len(pattern)-1] {
	case 'h':
		intervalMS = number * 3_600_000
	case 'm':
		intervalMS = number * 60_000
	case 's':
		intervalMS = number * 1000
	default:
		return nil, fmt.Errorf("interval pattern %q: unit must be h, m, or s", pattern)
	}

	var points []int64
	for current := intervalMS; current <= totalMS; current += intervalMS {
		points = append(points, current)
	}
	if len(points) == 0 {
		points = append(points, totalMS)
	}
	return points, nil
}

// parseCheckpointList validates comma-separated clock values, keeps them in
// bounds, and sorts them, warning when the caller supplied them out of order.
func parseCheckpointList(raw string, totalMS int64, logger *slog.Logger) ([]int64, error) {
	parts := strings.Split(raw, ",")
	points := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		point, err := timecode.ParseClock(part)
		if err != nil {
			return nil, fmt.Errorf("checkpoint %q: %w", part, err)
		}
		if point > totalMS {
			return nil, fmt.Errorf("checkpoint %q is out of bounds: audio ends at %s",
				part, timecode.FormatCompact(totalMS, true))
		}
		points = append(points, point)
	}

	if !sort.SliceIsSorted(points, func(i, j int) bool { return points[i] < points[j] }) {
		if logger != nil {
			logger.Warn("checkpoints were out of order and have been sorted")
		}
		sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	}
	return points, nil
}

// ParseSegments parses explicit "start-end" ranges. An interval pattern is
// accepted here too and delegates to the checkpoint expansion. The first
// segment may be written ":end" to start at zero, and the last may be a bare
// start to run to the end of the audio; every other segment must carry both
// endpoints. Out-of-order and overlapping segments are kept but logged.
func ParseSegments(raw string, totalMS int64, logger *slog.Logger) ([]Span, error) {
	raw = strings.TrimSpace(raw)
	if IsInterval(raw) {
		return FromCheckpoints(raw, totalMS, logger)
	}

	parts := strings.Split(raw, ",")
	spans := make([]Span, 0, len(parts))
	for index, part := range parts {
		part = strings.TrimSpace(part)
		span, err := parseSegment(part, index, len(parts), totalMS)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	warnDisorder(spans, logger)
	return spans, nil
}

func parseSegment(part string, index, count int, totalMS int64) (Span, error) {
	if index == 0 && strings.HasPrefix(part, ":") {
		endRaw := strings.TrimPrefix(part, ":")
		end := totalMS
		if endRaw != "" {
			var err error
			end, err = timecode.ParseClock(endRaw)
			if err != nil {
				return Span{}, fmt.Errorf("segment 1 %q: %w", part, err)
			}
		}
		return Span{StartMS: 0, EndMS: end}, nil
	}

	startRaw, endRaw, sep := strings.Cut(part, "-")
	if !sep || endRaw == "" {
		// Only the final segment may omit its end; it runs to the audio's end.
		if index != count-1 || sep {
			return Span{}, fmt.Errorf("segment %d %q is malformed: segments need both start and end", index+1, part)
		}
		start, err := timecode.ParseClock(startRaw)
		if err != nil {
			return Span{}, fmt.Errorf("segment %d %q: %w", index+1, part, err)
		}
		if totalMS < start {
			return Span{}, fmt.Errorf("segment %d %q is invalid: start is past the end of the audio", index+1, part)
		}
		return Span{StartMS: start, EndMS: totalMS}, nil
	}

	start, err := timecode.ParseClock(startRaw)
	if err != nil {
		return Span{}, fmt.Errorf("segment %d %q: %w", index+1, part, err)
	}
	end, err := timecode.ParseClock(endRaw)
	if err != nil {
		return Span{}, fmt.Errorf("segment %d %q: %w", index+1, part, err)
	}
	if end < start {
		return Span{}, fmt.Errorf("segment %d %q is invalid: end precedes start", index+1, part)
	}
	return Span{StartMS: start, EndMS: end}, nil
}

// warnDisorder logs spans that start before the previous one ends and pairs of
// spans that overlap. The plan is preserved as given; the coalescer copes with
// overlapping chunks, so this is advisory only.
func warnDisorder(spans []Span, logger *slog.Logger) {
	if logger == nil {
		return
	}
	previousEnd := int64(0)
	for i, span := range spans {
		if span.StartMS < previousEnd {
			logger.Warn("segment starts before the previous one ends",
				logging.Int("segment", i+1),
				logging.String("start", timecode.FormatCompact(span.StartMS, true)))
		}
		previousEnd = span.EndMS
	}
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[j].StartMS < spans[i].EndMS && spans[i].StartMS < spans[j].EndMS {
				logger.Warn("segments overlap",
					logging.Int("first", i+1),
					logging.Int("second", j+1))
			}
		}
	}
}
