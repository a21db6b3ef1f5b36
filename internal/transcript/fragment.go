package transcript

import (
	"regexp"
	"strconv"
)

// Fragment is one raw timestamped text unit emitted by the speech recognizer,
// before coalescing. Times are fractional seconds relative to the chunk's own
// audio, not the full timeline.
type Fragment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Chunk is one batch of fragments originating from a single transcription
// invocation. Name is the source identifier (typically the result file name)
// the chunk's timeline offset is recovered from.
type Chunk struct {
	Name      string
	Fragments []Fragment
}

// offsetPattern matches identifiers ending in "<hhmmss>_<hhmmss>.json"; the
// first group is the chunk's start position within the full audio.
var offsetPattern = regexp.MustCompile(`(\d{6})_(\d{6})\.json$`)

// Offset returns the chunk's timeline offset in seconds. The second return is
// false when the chunk name does not carry the expected hhmmss marker, in
// which case the fragments are taken as already aligned.
func (c Chunk) Offset() (float64, bool) {
	match := offsetPattern.FindStringSubmatch(c.Name)
	if match == nil {
		return 0, false
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	hours := value / 10_000
	minutes := value % 10_000 / 100
	seconds := value % 100
	return float64(hours*3600 + minutes*60 + seconds), true
}
