package coe

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tphakala/go-coe-analyzer/internal/coefile"
	"github.com/tphakala/go-coe-analyzer/internal/filter"
)

// TapArray is the ordered list of FIR filter coefficients, in time order.
type TapArray []float64

// Len returns the number of taps.
func (t TapArray) Len() int { return len(t) }

// Header is the metadata recorded from the lines preceding CoefData.
type Header = coefile.Header

// Document is a loaded coefficient file.
type Document struct {
	Path   string
	Header Header
	Taps   TapArray

	// Line is the 1-based line number of the CoefData line.
	Line int
}

// FrequencyResponse is the DTFT of a tap array sampled at uniformly spaced
// frequencies in [0, SampleRate/2). Frequencies and Response are index
// aligned and always have the same length.
type FrequencyResponse struct {
	// Frequencies in Hz, ascending, starting at 0.
	Frequencies []float64

	// Response holds H(e^{jω}) at each frequency.
	Response []complex128

	// SampleRate the frequency axis was mapped with, in Hz.
	SampleRate float64

	// Method is the evaluation method that produced Response.
	Method Method
}

// Len returns the number of frequency points.
func (r *FrequencyResponse) Len() int { return len(r.Frequencies) }

// Spacing returns the distance between adjacent frequency points in Hz.
func (r *FrequencyResponse) Spacing() float64 {
	return r.SampleRate / (halfDivisor * float64(len(r.Frequencies)))
}

// MagnitudeDB returns 20·log10(|H|) at point k. A zero response is -Inf.
func (r *FrequencyResponse) MagnitudeDB(k int) float64 {
	return filter.MagnitudeDB(r.Response[k])
}

// PhaseRadians returns the phase of H at point k in (-π, π].
func (r *FrequencyResponse) PhaseRadians(k int) float64 {
	return filter.Phase(r.Response[k])
}

// MagnitudesDB returns the magnitude curve in dB.
func (r *FrequencyResponse) MagnitudesDB() []float64 {
	out := make([]float64, len(r.Response))
	for k := range out {
		out[k] = r.MagnitudeDB(k)
	}
	return out
}

// Phases returns the phase curve in radians.
func (r *FrequencyResponse) Phases() []float64 {
	out := make([]float64, len(r.Response))
	for k := range out {
		out[k] = r.PhaseRadians(k)
	}
	return out
}

// LoadCoefficients reads a coefficient file together with its header.
// The file is closed before returning on every path.
func LoadCoefficients(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open coefficient file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseDocument(f, path)
}

// ParseCoefficients reads the taps of the coefficient file at path.
//
// The first line containing "CoefData" supplies the taps. A file without
// such a line, or with a token that is not a number, fails with a
// *ParseError.
func ParseCoefficients(path string) (TapArray, error) {
	doc, err := LoadCoefficients(path)
	if err != nil {
		return nil, err
	}
	return doc.Taps, nil
}

// ParseCoefficientsReader is ParseCoefficients over an io.Reader. name is
// used in error messages in place of a path.
func ParseCoefficientsReader(r io.Reader, name string) (TapArray, error) {
	doc, err := parseDocument(r, name)
	if err != nil {
		return nil, err
	}
	return doc.Taps, nil
}

func parseDocument(r io.Reader, name string) (*Document, error) {
	f, err := coefile.Parse(r)
	if err != nil {
		var syn *coefile.SyntaxError
		if errors.As(err, &syn) {
			return nil, &ParseError{Path: name, Line: syn.Line, Text: syn.Text, Err: syn.Err}
		}
		return nil, &ParseError{Path: name, Err: err}
	}

	return &Document{
		Path:   name,
		Header: f.Header,
		Taps:   TapArray(f.Taps),
		Line:   f.Line,
	}, nil
}

// ComputeFrequencyResponse evaluates H(e^{jω}) = Σ taps[n]·e^{-jωn} at
// ω_k = kπ/resolution for k ∈ [0, resolution) and maps each ω_k to Hz as
// f_k = ω_k·sampleRate/(2π).
//
// Empty taps, a non-positive (or non-finite) sample rate and a
// non-positive resolution fail with *InvalidInputError.
func ComputeFrequencyResponse(taps TapArray, sampleRate float64, resolution int) (*FrequencyResponse, error) {
	return ComputeFrequencyResponseWith(taps, sampleRate, resolution, MethodAuto)
}

// ComputeFrequencyResponseWith is ComputeFrequencyResponse with an explicit
// evaluation method.
func ComputeFrequencyResponseWith(taps TapArray, sampleRate float64, resolution int, method Method) (*FrequencyResponse, error) {
	if err := validateResponseInputs(taps, sampleRate, resolution, method); err != nil {
		return nil, err
	}

	h := filter.Response(taps, resolution, method)

	// f_k = ω_k·Fs/(2π) with ω_k = kπ/N, written as k·Fs/(2N) so that grid
	// points land exactly on multiples of the spacing.
	step := sampleRate / (halfDivisor * float64(resolution))
	freqs := make([]float64, resolution)
	for k := range freqs {
		freqs[k] = float64(k) * step
	}

	return &FrequencyResponse{
		Frequencies: freqs,
		Response:    h,
		SampleRate:  sampleRate,
		Method:      method.Resolve(len(taps)),
	}, nil
}

func validateResponseInputs(taps TapArray, sampleRate float64, resolution int, method Method) error {
	if len(taps) == 0 {
		return &InvalidInputError{Field: "taps", Value: 0, Reason: "must not be empty"}
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	if err := validateResolution(resolution); err != nil {
		return err
	}
	return validateMethod(method)
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return &InvalidInputError{Field: "sample rate", Value: sampleRate, Reason: "must be a positive finite number of Hz"}
	}
	return nil
}

func validateResolution(resolution int) error {
	if resolution <= 0 {
		return &InvalidInputError{Field: "resolution", Value: resolution, Reason: "must be positive"}
	}
	if resolution > MaxResolution {
		return &InvalidInputError{Field: "resolution", Value: resolution, Reason: fmt.Sprintf("exceeds maximum %d", MaxResolution)}
	}
	return nil
}

func validateMethod(method Method) error {
	switch method {
	case MethodAuto, MethodDirect, MethodFFT:
		return nil
	default:
		return &InvalidInputError{Field: "method", Value: int(method), Reason: "is not a known evaluation method"}
	}
}
