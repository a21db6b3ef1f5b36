// Package logging assembles the structured slog loggers used across scribe.
//
// It owns the console/JSON handler selection, level and output plumbing, and a
// no-op logger for tests and wiring code that cannot fail. Prefer these
// constructors over hand-rolled slog setup so every command emits log lines
// with the same shape.
package logging
