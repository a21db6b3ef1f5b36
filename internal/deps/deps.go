package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"scribe/internal/config"
)

// Requirement defines an external binary scribe relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// ForConfig lists the binaries a generation run needs.
func ForConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "ffmpeg", Command: cfg.FFmpegBinary(), Description: "extracts audio chunks for transcription"},
		{Name: "ffprobe", Command: cfg.FFprobeBinary(), Description: "probes audio duration and streams"},
		{Name: "transcriber", Command: cfg.TranscriberBinary(), Description: "speech recognition (whisper-timestamped compatible)"},
	}
}

// Check evaluates the provided requirements against PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		command := strings.TrimSpace(req.Command)
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// FirstMissing returns an error naming the first unavailable requirement, or
// nil when everything is present.
func FirstMissing(statuses []Status) error {
	for _, status := range statuses {
		if !status.Available {
			return fmt.Errorf("missing dependency %s: %s", status.Name, status.Detail)
		}
	}
	return nil
}
