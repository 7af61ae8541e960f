package whiten

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultEpsilon guards the inverse of a near-zero singular value in White.
const DefaultEpsilon = 1e-18

const panicEpsilonInvalid = "whiten: WithEpsilon: eps must be finite, non-negative"

// Option configures a Whiten call.
type Option func(*options)

type options struct {
	eps     float64
	verbose bool
	logger  zerolog.Logger
}

// WithEpsilon overrides the regularizer added to singular values before inversion.
// Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithVerbose toggles the retained-variance report (off by default).
func WithVerbose(v bool) Option {
	return func(o *options) { o.verbose = v }
}

// WithLogger routes verbose output to l instead of the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		eps:    DefaultEpsilon,
		logger: log.Logger,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if !o.verbose {
		o.logger = zerolog.Nop()
	}

	return o
}
