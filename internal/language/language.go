// Package language normalizes user-supplied language hints to the ISO 639-1
// codes the transcriber expects. All language handling funnels through here so
// command-line values like "en", "pt-BR", or "japanese" behave the same way
// everywhere.
package language

import (
	"fmt"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize resolves value (an ISO code or BCP 47 tag) to its base ISO 639
// language code. An empty value stays empty so callers can fall back to the
// configured default.
func Normalize(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	tag, err := xlang.Parse(value)
	if err != nil {
		return "", fmt.Errorf("language %q: %w", value, err)
	}
	base, confidence := tag.Base()
	if confidence == xlang.No {
		return "", fmt.Errorf("language %q: no base language", value)
	}
	return base.String(), nil
}

// DisplayName returns the English name of a language code, or the code itself
// when it cannot be resolved. Used in log lines and the inspect output.
func DisplayName(code string) string {
	tag, err := xlang.Parse(strings.TrimSpace(code))
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
