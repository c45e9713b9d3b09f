package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Quantize maps coeffs onto the signed integer grid of a width-bit
// coefficient memory: the largest magnitude becomes 2^(width-1)-1 and
// every coefficient is rounded to the nearest integer.
//
// It returns the integer-valued coefficients and the scale that was
// applied, so q[i] ≈ coeffs[i]·scale.
func Quantize(coeffs []float64, width int) (q []float64, scale float64, err error) {
	if width < minCoefWidth || width > maxCoefWidth {
		return nil, 0, fmt.Errorf("%w: coefficient width %d bits (must be %d-%d)",
			ErrInvalidDesign, width, minCoefWidth, maxCoefWidth)
	}

	q = make([]float64, len(coeffs))
	peak := floats.Norm(coeffs, math.Inf(1))
	if peak == 0 {
		return q, 1, nil
	}

	fullScale := math.Ldexp(1, width-1) - 1
	scale = fullScale / peak
	for i, c := range coeffs {
		q[i] = math.Round(c * scale)
	}

	return q, scale, nil
}
