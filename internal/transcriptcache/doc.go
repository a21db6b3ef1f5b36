// Package transcriptcache persists transcriber JSON results in SQLite so
// a rerun against the same audio skips the expensive recognition step.
//
// Entries are keyed by the SHA-256 of the source audio plus the span,
// model, and language, so edits to the source or a model change miss
// the cache instead of serving stale text.
package transcriptcache
