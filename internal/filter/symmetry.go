package filter

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Symmetry classifies the impulse response of a FIR filter.
type Symmetry int

const (
	Asymmetric Symmetry = iota
	Symmetric
	Antisymmetric
)

func (s Symmetry) String() string {
	switch s {
	case Symmetric:
		return "symmetric"
	case Antisymmetric:
		return "antisymmetric"
	default:
		return "asymmetric"
	}
}

// LinearPhase reports whether the symmetry implies exactly linear phase.
func (s Symmetry) LinearPhase() bool {
	return s != Asymmetric
}

// ClassifySymmetry reports whether h[n] = h[N-1-n] (symmetric) or
// h[n] = -h[N-1-n] (antisymmetric), within a tolerance relative to the
// largest coefficient.
func ClassifySymmetry(coeffs []float64) Symmetry {
	n := len(coeffs)
	if n == 0 {
		return Asymmetric
	}

	tol := symmetryTolerance * floats.Norm(coeffs, math.Inf(1))
	sym, anti := true, true

	for i := 0; i < n/2; i++ {
		a, b := coeffs[i], coeffs[n-1-i]
		if math.Abs(a-b) > tol {
			sym = false
		}
		if math.Abs(a+b) > tol {
			anti = false
		}
	}
	if n%2 == 1 && math.Abs(coeffs[n/2]) > tol {
		anti = false
	}

	switch {
	case sym:
		return Symmetric
	case anti:
		return Antisymmetric
	default:
		return Asymmetric
	}
}

// GroupDelay returns the group delay in samples of a linear-phase filter
// with numTaps taps.
func GroupDelay(numTaps int) float64 {
	return float64(numTaps-1) / halfDivisor
}
