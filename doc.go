// Package coe analyzes FIR filter coefficient (.coe) files in pure Go.
//
// A coefficient file is the text document a FIR compiler IP core is
// configured from:
//
//	; comment lines are ignored
//	Radix = 10;
//	Coefficient_Width = 16;
//	CoefData = 0.001,0.0023,...,-0.0004;
//
// The package extracts the taps from the CoefData line, evaluates the
// filter's discrete-time frequency response and derives the magnitude (dB)
// and phase (radians) curves over a declared sample rate.
//
// # Quick Start
//
// One-shot analysis of a file:
//
//	cfg := coe.DefaultConfig()
//	cfg.CoeFile = "fir20.coe"
//	cfg.SampleRate = 40e6
//
//	res, err := coe.Analyze(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d taps, DC gain %.2f dB\n", res.Summary.NumTaps, res.Summary.DCGainDB)
//
// The individual steps are available on their own:
//
//	taps, err := coe.ParseCoefficients("fir20.coe")
//	resp, err := coe.ComputeFrequencyResponse(taps, 40e6, 2048)
//	for k := range resp.Len() {
//	    fmt.Println(resp.Frequencies[k], resp.MagnitudeDB(k), resp.PhaseRadians(k))
//	}
//
// # Frequency Response
//
// The response is H(e^{jω}) = Σ taps[n]·e^{-jωn} evaluated at
// ω_k = kπ/N for k ∈ [0, N), where N is the resolution (2048 by default).
// Frequencies are reported in Hz as f_k = ω_k·Fs/(2π), so they start at
// 0, are spaced Fs/(2N) apart and stop one step short of Fs/2.
//
// Two evaluators are available through [Method]:
//
//   - [MethodDirect]: term-by-term DTFT using SIMD dot products via
//     github.com/tphakala/simd.
//   - [MethodFFT]: a 2N point real FFT (gonum.org/v1/gonum/dsp/fourier).
//     Filters longer than 2N are folded first, which is exact at the
//     evaluated frequencies.
//
// [MethodAuto] picks the FFT for long filters. The result depends only on
// the inputs.
//
// # Errors
//
// Two kinds of errors are returned, both fatal to an analysis:
//
//   - [*ParseError] (matches [ErrParse]) when a file has no CoefData line
//     or a coefficient is not a number. It carries the path, line number
//     and line text.
//   - [*InvalidInputError] (matches [ErrInvalidInput]) when taps are empty
//     or the sample rate or resolution are not positive.
//
// # Coefficient Values
//
// Tokens are parsed as decimal floating point numbers regardless of the
// declared Radix. Files that hold quantized integer coefficients analyze
// fine: the magnitude curve is offset by the quantization scale, which
// [Summary.DCGainDB] makes visible.
package coe
