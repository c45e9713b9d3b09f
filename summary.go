package coe

import (
	"math"

	"github.com/tphakala/go-coe-analyzer/internal/filter"
	"gonum.org/v1/gonum/floats"
)

// Symmetry classifies a tap array as symmetric, antisymmetric or neither.
type Symmetry = filter.Symmetry

const (
	Asymmetric    = filter.Asymmetric
	Symmetric     = filter.Symmetric
	Antisymmetric = filter.Antisymmetric
)

// Summary holds scalar figures derived from an analysis.
type Summary struct {
	NumTaps int

	// DCGain is the sum of the taps; DCGainDB is 20·log10|DCGain|.
	DCGain   float64
	DCGainDB float64

	// PeakGainDB is the largest value of the magnitude curve, found at
	// PeakFrequency Hz.
	PeakGainDB    float64
	PeakFrequency float64

	// CutoffFrequency is the first frequency above the peak where the
	// magnitude has fallen 3 dB below PeakGainDB, linearly interpolated
	// between grid points. It is 0 if the response never falls that far.
	CutoffFrequency float64

	Symmetry    Symmetry
	LinearPhase bool

	// GroupDelay in samples for linear-phase filters, 0 otherwise.
	GroupDelay float64

	// Energy is the sum of squared taps.
	Energy float64

	// Method is the evaluation method actually used.
	Method Method
}

func summarize(taps TapArray, resp *FrequencyResponse, mags []float64) Summary {
	dc := filter.DCGain(taps)
	sym := filter.ClassifySymmetry(taps)

	s := Summary{
		NumTaps:     len(taps),
		DCGain:      dc,
		DCGainDB:    filter.MagnitudeDB(complex(dc, 0)),
		Symmetry:    sym,
		LinearPhase: sym.LinearPhase(),
		Energy:      floats.Dot(taps, taps),
		Method:      resp.Method,
	}
	if s.LinearPhase {
		s.GroupDelay = filter.GroupDelay(len(taps))
	}

	peak := floats.MaxIdx(mags)
	s.PeakGainDB = mags[peak]
	s.PeakFrequency = resp.Frequencies[peak]
	s.CutoffFrequency = cutoffAfter(resp.Frequencies, mags, peak)

	return s
}

// cutoffAfter finds the -3 dB point following the peak at index peak.
// A non-finite peak (zero or NaN taps) has no cutoff.
func cutoffAfter(freqs, mags []float64, peak int) float64 {
	if math.IsInf(mags[peak], 0) || math.IsNaN(mags[peak]) {
		return 0
	}
	threshold := mags[peak] - cutoffDropDB

	for k := peak + 1; k < len(mags); k++ {
		if mags[k] > threshold || math.IsNaN(mags[k]) {
			continue
		}
		if math.IsInf(mags[k], -1) || math.IsNaN(mags[k-1]) {
			return freqs[k]
		}
		frac := (mags[k-1] - threshold) / (mags[k-1] - mags[k])
		return freqs[k-1] + frac*(freqs[k]-freqs[k-1])
	}

	return 0
}
