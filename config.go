package coe

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-coe-analyzer/internal/filter"
)

// Method selects how the frequency response is evaluated.
type Method = filter.Method

// Evaluation methods. All of them compute the same DTFT at the same
// frequencies and agree to within floating point rounding.
const (
	// MethodAuto uses MethodFFT for long filters and MethodDirect otherwise.
	MethodAuto = filter.MethodAuto

	// MethodDirect sums the DTFT term by term at each frequency.
	MethodDirect = filter.MethodDirect

	// MethodFFT takes the response from a 2·resolution point real FFT.
	MethodFFT = filter.MethodFFT
)

// ParseMethod maps "auto", "direct" or "fft" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return MethodAuto, nil
	case "direct", "dtft":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("%w: unknown method %q (want auto, direct or fft)", ErrInvalidInput, s)
	}
}

// Config holds analysis configuration.
type Config struct {
	// CoeFile is the path of the coefficient file to analyze.
	CoeFile string

	// SampleRate the filter runs at, in Hz. Frequencies are reported in Hz
	// on [0, SampleRate/2).
	SampleRate float64

	// Resolution is the number of frequency points evaluated.
	Resolution int

	// Method selects the response evaluator.
	Method Method
}

// DefaultConfig returns a configuration with the default sample rate,
// resolution and method. CoeFile is left empty.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Resolution: DefaultResolution,
		Method:     MethodAuto,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CoeFile) == "" {
		return &InvalidInputError{Field: "coe file", Value: `""`, Reason: "must be set"}
	}
	return c.validateParams()
}

// validateParams checks everything but the input file.
func (c *Config) validateParams() error {
	if err := validateSampleRate(c.SampleRate); err != nil {
		return err
	}
	if err := validateResolution(c.Resolution); err != nil {
		return err
	}
	return validateMethod(c.Method)
}
