// SPDX-License-Identifier: MIT

// Package slicing: functional configuration of a single copy call.
//
// Design goals:
//   - No global state: options are resolved per call by gatherOptions.
//   - No dead switches: every option changes observable behavior or output
//     and is covered by tests.
//   - Panic only on nonsensical values (programmer error).
package slicing

import "log/slog"

// DefaultBulkCopy enables the contiguous inner-run fast path.
const DefaultBulkCopy = true

const panicNilLogger = "slicing: WithLogger: logger must be non-nil"

// Option mutates per-call options.
type Option func(*options)

type options struct {
	bulk bool         // DefaultBulkCopy
	log  *slog.Logger // nil: rejected calls are not logged
}

// WithBulkCopy toggles the fast path that moves a contiguous innermost run
// with one copy() instead of an element loop. Results are identical either way.
func WithBulkCopy(on bool) Option {
	return func(o *options) { o.bulk = on }
}

// WithLogger logs rejected calls at debug level on l.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.log = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{bulk: DefaultBulkCopy}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
