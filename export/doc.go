// Package export renders sampling results into flat artifacts a caller can
// archive or feed to a plotting layer: CSV tables for the ranked states, the
// energy tower, and the correlation matrix, plus a JSON run manifest that
// records every parameter needed to reproduce the run.
//
// The core stays pure; all I/O lives here. Writers accept io.Writer so
// callers choose the destination (file, buffer, pipe).
package export
