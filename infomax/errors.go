package infomax

import "errors"

// Fatal outcomes of a run. Blow-ups that can still be annealed away are not
// errors: they are absorbed by Sweep and only counted in Result.Restarts.
var (
	// ErrRankDeficient is returned when the data cannot support the requested
	// number of components while the learning rate is still above the floor.
	ErrRankDeficient = errors.New("infomax: data is rank deficient for the requested components")

	// ErrNonInvertible is returned when repeated blow-ups anneal the learning
	// rate below Config.MinLearningRate; the weight matrix is then unlikely to
	// be invertible.
	ErrNonInvertible = errors.New("infomax: learning rate fell below the floor; weight matrix may not be invertible")

	// ErrTooFewComponents is returned for fewer than two components
	// (the initial rate 0.005/ln(ncomp) is undefined for ncomp=1).
	ErrTooFewComponents = errors.New("infomax: at least two components are required")

	// ErrTooFewSamples is returned when the sample count gives a zero block size.
	ErrTooFewSamples = errors.New("infomax: at least three samples are required")

	// ErrInvalidConfig is returned by Config.Validate and DecodeConfig.
	ErrInvalidConfig = errors.New("infomax: invalid config")
)
