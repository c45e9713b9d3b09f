package filter

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Method selects how a frequency response is evaluated. Every method
// evaluates the same DTFT at the same points; they differ only in cost
// and in rounding.
type Method int

const (
	// MethodAuto picks MethodFFT for long filters and MethodDirect otherwise.
	MethodAuto Method = iota

	// MethodDirect sums h[n]·e^{-jωn} for each frequency point.
	MethodDirect

	// MethodFFT uses a zero-padded (or folded) real FFT of size 2N.
	MethodFFT
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// Resolve returns the concrete method used for a filter of numTaps taps.
func (m Method) Resolve(numTaps int) Method {
	if m != MethodAuto {
		return m
	}
	if numTaps >= minTapsForFFT {
		return MethodFFT
	}
	return MethodDirect
}

// Response evaluates H(e^{jω}) = Σ h[n]·e^{-jωn} at numPoints angular
// frequencies ω_k = kπ/numPoints, k ∈ [0, numPoints), i.e. uniformly over
// [0, π) radians/sample.
//
// Element k of the result is H(e^{jω_k}). Callers must pass a non-empty
// coeffs and a positive numPoints; the Hz axis is left to the caller.
func Response(coeffs []float64, numPoints int, method Method) []complex128 {
	if method.Resolve(len(coeffs)) == MethodFFT {
		return responseFFT(coeffs, numPoints)
	}
	return responseDirect(coeffs, numPoints)
}

// responseDirect evaluates the DTFT point by point. The angle k·n·π/N is
// reduced modulo 2π in integer arithmetic before the table lookup, so long
// filters do not lose precision to large trig arguments.
func responseDirect(coeffs []float64, numPoints int) []complex128 {
	period := fullCircle * numPoints
	cosTab, sinTab := twiddles(period)

	n := len(coeffs)
	cosK := make([]float64, n)
	sinK := make([]float64, n)
	h := make([]complex128, numPoints)

	for k := range numPoints {
		idx := 0
		for i := range n {
			cosK[i] = cosTab[idx]
			sinK[i] = sinTab[idx]
			idx += k
			if idx >= period {
				idx -= period
			}
		}
		re := f64.DotProduct(coeffs, cosK)
		im := -f64.DotProduct(coeffs, sinK)
		h[k] = complex(re, im)
	}

	return h
}

// responseFFT evaluates the DTFT at ω_k = 2πk/(2N) as bins of a 2N-point
// real FFT. Taps beyond 2N are folded onto n mod 2N, which leaves the DTFT
// unchanged at exactly these frequencies.
func responseFFT(coeffs []float64, numPoints int) []complex128 {
	size := fullCircle * numPoints

	folded := make([]float64, size)
	for i, c := range coeffs {
		folded[i%size] += c
	}

	fft := fourier.NewFFT(size)
	bins := fft.Coefficients(nil, folded)

	h := make([]complex128, numPoints)
	copy(h, bins[:numPoints])
	return h
}

// twiddles returns cos and sin of 2πm/period for m ∈ [0, period).
func twiddles(period int) (cosTab, sinTab []float64) {
	cosTab = make([]float64, period)
	sinTab = make([]float64, period)
	for m := range period {
		angle := 2 * math.Pi * float64(m) / float64(period)
		sinTab[m], cosTab[m] = math.Sincos(angle)
	}
	// Pin the exact zeros the table should carry.
	cosTab[0], sinTab[0] = 1, 0
	if period%2 == 0 {
		cosTab[period/2], sinTab[period/2] = -1, 0
	}
	return cosTab, sinTab
}

// MagnitudeDB returns 20·log10(|h|). A zero response yields -Inf.
func MagnitudeDB(h complex128) float64 {
	return dbMultiplier * math.Log10(cmplx.Abs(h))
}

// Phase returns the argument of h in (-π, π].
func Phase(h complex128) float64 {
	p := cmplx.Phase(h)
	if p == -math.Pi {
		return math.Pi
	}
	return p
}

// DCGain returns the sum of the coefficients, H(e^{j0}).
func DCGain(coeffs []float64) float64 {
	return f64.Sum(coeffs)
}
