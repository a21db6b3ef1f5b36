// Package preflight provides readiness checks for the binaries and
// filesystem paths scribe depends on.
//
// The generate command runs RunAll before touching the source media so
// that a missing transcriber or an unwritable work directory fails fast
// instead of partway through a long transcription.
package preflight
