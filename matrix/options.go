// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies user options over the defaults.
//
// Design goals:
//   - No global mutable state; every call resolves its own Options.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultRcond is the relative cutoff used by PseudoInverse: singular values
	// at or below DefaultRcond·σmax are treated as zero (the usual pinv default).
	DefaultRcond = 1e-15

	// DefaultRankTol selects the automatic rank tolerance σmax·max(r,c)·MachineEpsilon.
	DefaultRankTol = 0.0

	// MachineEpsilon is the float64 unit roundoff used by the automatic rank tolerance.
	MachineEpsilon = 2.220446049250313e-16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRcondInvalid = "matrix: WithRcond: rcond must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	rcond          float64 // DefaultRcond, relative to σmax
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation for newly built matrices.
// Use only when NaN/Inf are expected and detected explicitly (see HasNaN, MaxAbs).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRcond sets the relative singular-value cutoff used by PseudoInverse.
// Panics when rcond is negative or non-finite.
//
// Complexity: O(1).
func WithRcond(rcond float64) Option {
	if isNonFinite(rcond) || rcond < 0 {
		panic(panicRcondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// gatherOptions applies user options over the defaults in order
// (last-writer-wins) and returns the effective Options.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		rcond:          DefaultRcond,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
