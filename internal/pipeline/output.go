package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scribe/internal/logging"
)

// ResolveOutputPath turns the user-supplied output location into the SRT file
// path to write. A directory resolves to <dir>/<defaultName>; anything else
// must end in ".srt" and sit in an existing directory. Overwriting an
// existing track logs a warning rather than failing.
func ResolveOutputPath(raw, defaultName string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("output path required")
	}

	if info, err := os.Stat(raw); err == nil && info.IsDir() {
		raw = filepath.Join(raw, defaultName)
	}

	if !strings.EqualFold(filepath.Ext(raw), ".srt") {
		return "", fmt.Errorf("output path %q must end in .srt", raw)
	}

	parent := filepath.Dir(raw)
	info, err := os.Stat(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("output directory %q does not exist", parent)
		}
		return "", fmt.Errorf("check output directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output parent %q is not a directory", parent)
	}

	if _, err := os.Stat(raw); err == nil {
		logger.Warn("output track exists and will be overwritten",
			logging.String("path", raw))
	}

	return raw, nil
}
