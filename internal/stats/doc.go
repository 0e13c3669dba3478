// Package stats turns timestamped commerce records into dashboard statistics:
// month-over-month deltas, fixed-length monthly series, category shares, a
// synthetic revenue breakdown, and the four dashboard payloads assembled from
// them.
//
// Everything except the Assembler is a pure function over already-fetched
// records. The Assembler only reads from the repositories.
package stats

import "errors"

// ErrPrecondition marks a call that violates a documented precondition.
// It signals a programming error in the caller and is not retried.
var ErrPrecondition = errors.New("stats: precondition violated")
