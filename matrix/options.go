// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of Dense construction.
//
// Design goals:
//   - No global state: options are resolved per constructor call.
//   - Panic only on nonsensical values (programmer error).
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set and
// on ingestion through NewDenseFrom / SetSlice.
const DefaultValidateNaNInf = true

// Option mutates construction options.
type Option func(*options)

type options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

func gatherOptions(opts []Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
