package ica

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvica/infomax"
	"github.com/katalvlaran/lvica/whiten"
)

// Option configures Decompose.
type Option func(*options)

type options struct {
	cfg     infomax.Config
	seed    int64
	rng     *rand.Rand
	eps     float64
	verbose bool
	logger  zerolog.Logger
}

// WithConfig replaces the Infomax constants. Panics when cfg.Validate fails.
func WithConfig(cfg infomax.Config) Option {
	infomax.WithConfig(cfg) // panics on an invalid cfg

	return func(o *options) { o.cfg = cfg }
}

// WithSeed fixes the permutation stream of the optimizer.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the optimizer's random source; it wins over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithWhitenEpsilon overrides the singular-value regularizer of the whitener.
// Panics when eps is negative or non-finite.
func WithWhitenEpsilon(eps float64) Option {
	whiten.WithEpsilon(eps) // panics on an invalid eps

	return func(o *options) { o.eps = eps }
}

// WithVerbose toggles progress logging. Decompose is verbose by default.
func WithVerbose(v bool) Option {
	return func(o *options) { o.verbose = v }
}

// WithLogger routes progress logs to l instead of the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		cfg:     infomax.DefaultConfig(),
		eps:     whiten.DefaultEpsilon,
		verbose: true,
		logger:  log.Logger,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// stageLogger returns the logger for pipeline stage messages.
func (o options) stageLogger() zerolog.Logger {
	if !o.verbose {
		return zerolog.Nop()
	}

	return o.logger
}

func (o options) whitenOptions() []whiten.Option {
	return []whiten.Option{
		whiten.WithEpsilon(o.eps),
		whiten.WithVerbose(o.verbose),
		whiten.WithLogger(o.logger),
	}
}

func (o options) infomaxOptions(rank int) []infomax.Option {
	return []infomax.Option{
		infomax.WithConfig(o.cfg),
		infomax.WithSeed(o.seed),
		infomax.WithRand(o.rng),
		infomax.WithSignalRank(rank),
		infomax.WithVerbose(o.verbose),
		infomax.WithLogger(o.logger),
	}
}
