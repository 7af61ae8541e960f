package ica

import (
	"github.com/katalvlaran/lvica/infomax"
	"github.com/katalvlaran/lvica/whiten"
)

// Sentinels surfaced by Decompose, shared with the packages that raise them
// so errors.Is works against either name.
var (
	ErrRankDeficient    = infomax.ErrRankDeficient
	ErrNonInvertible    = infomax.ErrNonInvertible
	ErrTooFewComponents = infomax.ErrTooFewComponents
	ErrTooFewSamples    = infomax.ErrTooFewSamples
	ErrComponents       = whiten.ErrComponents
)
