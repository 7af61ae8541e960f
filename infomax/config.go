package infomax

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Defaults for Config. They reproduce the reference Infomax constants.
const (
	DefaultEpsilon           = 1e-18
	DefaultMaxWeight         = 1e8
	DefaultAnneal            = 0.9
	DefaultAnnealAngle       = 60.0
	DefaultMaxSteps          = 500
	DefaultMinLearningRate   = 1e-6
	DefaultWeightStop        = 1e-6
	DefaultLearningRateScale = 0.005
	DefaultLogEvery          = 10
)

// Config holds the numeric constants of the optimizer. It is a plain value:
// copies are independent and nothing in this package mutates a Config.
type Config struct {
	// Epsilon regularizes the denominator of the angle computation.
	Epsilon float64 `yaml:"epsilon"`

	// MaxWeight is the max |W| above which a sweep counts as blown up.
	MaxWeight float64 `yaml:"max_weight"`

	// Anneal multiplies the learning rate after a blow-up or a sharp turn.
	Anneal float64 `yaml:"anneal"`

	// AnnealAngle is the turn (degrees) between successive weight changes
	// that triggers annealing.
	AnnealAngle float64 `yaml:"anneal_angle"`

	// MaxSteps caps the number of successful sweeps.
	MaxSteps int `yaml:"max_steps"`

	// MinLearningRate is the floor below which a run is abandoned.
	MinLearningRate float64 `yaml:"min_learning_rate"`

	// WeightStop is the squared weight-change norm that ends training.
	WeightStop float64 `yaml:"weight_stop"`

	// LearningRateScale sets the initial rate LearningRateScale/ln(ncomp).
	LearningRateScale float64 `yaml:"learning_rate_scale"`

	// LogEvery is the verbose progress interval, in steps.
	LogEvery int `yaml:"log_every"`
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		Epsilon:           DefaultEpsilon,
		MaxWeight:         DefaultMaxWeight,
		Anneal:            DefaultAnneal,
		AnnealAngle:       DefaultAnnealAngle,
		MaxSteps:          DefaultMaxSteps,
		MinLearningRate:   DefaultMinLearningRate,
		WeightStop:        DefaultWeightStop,
		LearningRateScale: DefaultLearningRateScale,
		LogEvery:          DefaultLogEvery,
	}
}

// Validate reports the first field holding a nonsensical value.
func (c Config) Validate() error {
	switch {
	case !finite(c.Epsilon) || c.Epsilon < 0:
		return configErrorf("epsilon", c.Epsilon)
	case !finite(c.MaxWeight) || c.MaxWeight <= 0:
		return configErrorf("max_weight", c.MaxWeight)
	case !finite(c.Anneal) || c.Anneal <= 0 || c.Anneal >= 1:
		return configErrorf("anneal", c.Anneal)
	case !finite(c.AnnealAngle) || c.AnnealAngle <= 0 || c.AnnealAngle > 180:
		return configErrorf("anneal_angle", c.AnnealAngle)
	case c.MaxSteps < 1:
		return configErrorf("max_steps", c.MaxSteps)
	case !finite(c.MinLearningRate) || c.MinLearningRate <= 0:
		return configErrorf("min_learning_rate", c.MinLearningRate)
	case !finite(c.WeightStop) || c.WeightStop < 0:
		return configErrorf("weight_stop", c.WeightStop)
	case !finite(c.LearningRateScale) || c.LearningRateScale <= 0:
		return configErrorf("learning_rate_scale", c.LearningRateScale)
	case c.LogEvery < 1:
		return configErrorf("log_every", c.LogEvery)
	}

	return nil
}

// InitialLearningRate returns LearningRateScale/ln(ncomp).
func (c Config) InitialLearningRate(ncomp int) float64 {
	return c.LearningRateScale / math.Log(float64(ncomp))
}

// DecodeConfig reads a YAML document on top of DefaultConfig: keys that are
// absent keep their default, unknown keys are rejected. An empty document
// yields DefaultConfig.
//
//	max_steps: 1000
//	anneal: 0.95
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func configErrorf(field string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, field, v)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
