package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat indicates a timestamp or clock value did not match its expected pattern.
var ErrFormat = errors.New("timecode: malformed value")

var (
	srtPattern   = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)
	clockPattern = regexp.MustCompile(`^(\d+:)?(\d+:)?\d+$`)
)

// FormatSeconds renders a non-negative duration in seconds as an SRT timestamp
// "HH:MM:SS,mmm". Hours are not clamped to 24. Sub-millisecond remainders are
// truncated; this package never rounds up, so formatting and parsing agree to
// the millisecond everywhere a track is produced or consumed.
func FormatSeconds(seconds float64) string {
	micros := int64(math.Round(seconds * 1e6))
	if micros < 0 {
		micros = 0
	}
	millis := micros / 1000
	hours := millis / 3_600_000
	minutes := millis % 3_600_000 / 60_000
	secs := millis % 60_000 / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, ms)
}

// ParseSeconds converts an SRT timestamp back to fractional seconds. The value
// must match the exact "HH:MM:SS,mmm" shape with two-digit hour/minute/second
// groups (hours may be wider) and a three-digit millisecond group.
func ParseSeconds(value string) (float64, error) {
	match := srtPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, fmt.Errorf("%w: timestamp %q", ErrFormat, value)
	}
	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp %q", ErrFormat, value)
	}
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis, _ := strconv.Atoi(match[4])
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// ParseClock converts a "[hh:][mm:]ss" clock value to milliseconds. Leading
// groups are optional, so "90" is ninety seconds and "1:30" is one minute
// thirty.
func ParseClock(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if !clockPattern.MatchString(value) {
		return 0, fmt.Errorf("%w: clock %q", ErrFormat, value)
	}
	parts := strings.Split(value, ":")
	multipliers := []int64{1000, 60_000, 3_600_000}
	var total int64
	for i := range parts {
		v, err := strconv.ParseInt(parts[len(parts)-1-i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: clock %q", ErrFormat, value)
		}
		total += v * multipliers[i]
	}
	return total, nil
}

// FormatCompact renders a millisecond duration as zero-padded "hhmmss" digits,
// inserting ':' separators when requested. The compact form names chunk result
// files; the separated form is for log lines.
func FormatCompact(ms int64, separated bool) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	sep := ""
	if separated {
		sep = ":"
	}
	return fmt.Sprintf("%02d%s%02d%s%02d", secs/3600, sep, secs%3600/60, sep, secs%60)
}
