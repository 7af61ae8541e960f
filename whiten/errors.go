package whiten

import "errors"

// ErrComponents is returned when ncomp is outside [1, min(observations, variables)].
var ErrComponents = errors.New("whiten: component count out of range")
