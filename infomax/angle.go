package infomax

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvica/matrix"
)

// ChangeAngle returns the angle, in degrees, between two weight-change
// matrices viewed as flat vectors:
//
//	acos( ⟨prev,cur⟩ / (√(‖prev‖²·‖cur‖²) + eps) ) · 180/π
//
// The cosine is clamped to [-1, 1] so rounding never yields NaN.
// Two zero changes give 90°.
func ChangeAngle(prev, cur matrix.Matrix, eps float64) (float64, error) {
	dot, err := matrix.FrobeniusInner(prev, cur)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opChangeAngle, err)
	}
	pm, err := matrix.SumSquares(prev)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opChangeAngle, err)
	}
	cm, err := matrix.SumSquares(cur)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opChangeAngle, err)
	}

	return angleDegrees(dot, pm, cm, eps), nil
}

func angleDegrees(dot, prevMag, curMag, eps float64) float64 {
	c := dot / (math.Sqrt(prevMag*curMag) + eps)
	c = math.Max(-1, math.Min(1, c))

	return math.Acos(c) * 180 / math.Pi
}

// tracker remembers the reference weight change that the annealing angle
// is measured against.
type tracker struct {
	change *matrix.Dense
	mag    float64
}

func (t *tracker) seed(change *matrix.Dense, mag float64) {
	t.change, t.mag = change, mag
}

// angle measures change against the reference. It errs only on a shape
// mismatch, which means the tracker was never seeded.
func (t *tracker) angle(change *matrix.Dense, mag, eps float64) (float64, error) {
	if t.change == nil {
		return 0, fmt.Errorf("%s: %w", opChangeAngle, matrix.ErrNilMatrix)
	}
	dot, err := matrix.FrobeniusInner(t.change, change)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opChangeAngle, err)
	}

	return angleDegrees(dot, t.mag, mag, eps), nil
}
