package infomax

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	panicConfigInvalid = "infomax: WithConfig: invalid config"
	panicRankNegative  = "infomax: WithSignalRank: rank must be non-negative"
)

// Option configures an Optimizer.
type Option func(*options)

type options struct {
	cfg     Config
	seed    int64
	rng     *rand.Rand
	rank    int
	verbose bool
	logger  zerolog.Logger
}

// WithConfig replaces the numeric constants. Panics when cfg.Validate fails;
// use DecodeConfig to turn untrusted input into an error instead.
func WithConfig(cfg Config) Option {
	if err := cfg.Validate(); err != nil {
		panic(panicConfigInvalid + ": " + err.Error())
	}

	return func(o *options) { o.cfg = cfg }
}

// WithSeed fixes the permutation stream. Seed 0 maps to a fixed default,
// so runs are reproducible unless a caller supplies its own source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the random source directly; it wins over WithSeed.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSignalRank tells the optimizer the rank of the data it will see,
// typically whiten.Result.Rank, so a blow-up does not trigger an SVD.
// Panics on a negative rank.
func WithSignalRank(rank int) Option {
	if rank < 0 {
		panic(panicRankNegative)
	}

	return func(o *options) { o.rank = rank }
}

// WithVerbose enables progress logging.
func WithVerbose(v bool) Option {
	return func(o *options) { o.verbose = v }
}

// WithLogger routes progress logs to l instead of the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		cfg:    DefaultConfig(),
		rank:   rankUnknown,
		logger: log.Logger,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}
	if !o.verbose {
		o.logger = zerolog.Nop()
	}

	return o
}
