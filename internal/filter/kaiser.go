// Package filter evaluates and designs FIR filters: DTFT frequency
// responses, impulse-response symmetry, Kaiser-window lowpass design and
// fixed-point coefficient quantization.
package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-coe-analyzer/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// ErrInvalidDesign is returned for filter design parameters out of range.
var ErrInvalidDesign = errors.New("invalid filter design")

// KaiserWindow generates a Kaiser window of the given length and β.
//
//	w[n] = I₀(β·sqrt(1 − ((n − α)/α)²)) / I₀(β),  α = (length−1)/2
//
// The window is symmetric and peaks at 1.0 in the centre. A non-positive
// length yields an empty window.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1.0
		return window
	}

	alpha := float64(length-1) / halfDivisor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}

	return window
}

// FilterParams holds parameters for lowpass filter design.
type FilterParams struct {
	// NumTaps is the filter length. Odd lengths give an integer group delay.
	NumTaps int

	// CutoffFreq is the -6 dB point as a fraction of the sample rate, in (0, 0.5).
	CutoffFreq float64

	// Attenuation is the desired stopband attenuation in dB.
	Attenuation float64

	// Gain is the DC gain of the designed filter.
	Gain float64
}

// Validate checks if filter parameters are valid.
func (fp *FilterParams) Validate() error {
	if fp.NumTaps < minFilterTaps {
		return fmt.Errorf("%w: filter too short: %d taps (minimum %d)", ErrInvalidDesign, fp.NumTaps, minFilterTaps)
	}

	if fp.NumTaps > maxFilterTaps {
		return fmt.Errorf("%w: filter too long: %d taps (maximum %d)", ErrInvalidDesign, fp.NumTaps, maxFilterTaps)
	}

	if fp.CutoffFreq <= 0 || fp.CutoffFreq >= 0.5 {
		return fmt.Errorf("%w: cutoff %f must be in (0, 0.5) of the sample rate", ErrInvalidDesign, fp.CutoffFreq)
	}

	if fp.Attenuation < 0 {
		return fmt.Errorf("%w: attenuation %f dB must not be negative", ErrInvalidDesign, fp.Attenuation)
	}

	if fp.Gain <= 0 {
		return fmt.Errorf("%w: gain %f must be positive", ErrInvalidDesign, fp.Gain)
	}

	return nil
}

// DesignLowPassFilter designs a Kaiser-windowed sinc lowpass FIR.
//
// The ideal impulse response 2fc·sinc(2fc·(n − c)) is truncated to NumTaps,
// tapered with a Kaiser window whose β follows from Attenuation, and
// scaled so the coefficients sum to Gain. The result is symmetric, so the
// filter has linear phase.
func DesignLowPassFilter(params FilterParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	window := KaiserWindow(params.NumTaps, mathutil.KaiserBeta(params.Attenuation))

	taps := make([]float64, params.NumTaps)
	center := float64(params.NumTaps-1) / halfDivisor

	for n := range params.NumTaps {
		x := float64(n) - center

		var sinc float64
		if math.Abs(x) < sincZeroThreshold {
			sinc = halfDivisor * params.CutoffFreq
		} else {
			sinc = math.Sin(halfDivisor*math.Pi*params.CutoffFreq*x) / (math.Pi * x)
		}

		taps[n] = sinc * window[n]
	}

	if sum := f64.Sum(taps); math.Abs(sum) > sincZeroThreshold {
		f64.Scale(taps, taps, params.Gain/sum)
	}

	return taps, nil
}

// DesignLowPassFilterAuto designs a lowpass filter whose length is
// estimated from the attenuation and transition bandwidth (both relative
// to the sample rate).
func DesignLowPassFilterAuto(cutoffFreq, transitionBW, attenuation, gain float64) ([]float64, error) {
	if transitionBW <= 0 || transitionBW >= 0.5 {
		return nil, fmt.Errorf("%w: transition bandwidth %f must be in (0, 0.5)", ErrInvalidDesign, transitionBW)
	}

	return DesignLowPassFilter(FilterParams{
		NumTaps:     mathutil.EstimateFilterLength(attenuation, transitionBW),
		CutoffFreq:  cutoffFreq,
		Attenuation: attenuation,
		Gain:        gain,
	})
}
