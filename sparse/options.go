// SPDX-License-Identifier: MIT

// Package sparse: functional configuration of an Engine.
package sparse

import "log/slog"

// DefaultCompressOnClone keeps a clone in its source's storage mode.
const DefaultCompressOnClone = false

// DefaultTombstoneLimit is how many destroyed handles an Engine remembers.
const DefaultTombstoneLimit = 1024

const (
	panicNilLogger     = "sparse: WithLogger: logger must be non-nil"
	panicTombstoneSize = "sparse: WithTombstoneLimit: limit must be >= 1"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	log             *slog.Logger // slog.Default()
	compressOnClone bool         // DefaultCompressOnClone
	tombstones      int          // DefaultTombstoneLimit
}

// WithLogger sets the logger for handle lifecycle events (TRACE) and leak
// reports (WARN). Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.log = l }
}

// WithCompressOnClone makes Clone always return a compressed matrix.
func WithCompressOnClone(on bool) Option {
	return func(o *options) { o.compressOnClone = on }
}

// WithTombstoneLimit bounds how many destroyed handles are remembered. Past
// the limit the oldest are forgotten and report ErrUnknownHandle instead of
// ErrReleased or ErrDoubleRelease. Panics when n < 1.
func WithTombstoneLimit(n int) Option {
	if n < 1 {
		panic(panicTombstoneSize)
	}

	return func(o *options) { o.tombstones = n }
}

func gatherOptions(opts []Option) options {
	o := options{
		log:             slog.Default(),
		compressOnClone: DefaultCompressOnClone,
		tombstones:      DefaultTombstoneLimit,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
