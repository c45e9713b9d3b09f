package filter

const (
	// Filter design limits
	minFilterTaps = 3
	maxFilterTaps = 8191

	// Coefficient width limits for quantization, in bits.
	minCoefWidth = 2
	maxCoefWidth = 49

	halfDivisor = 2.0

	sincZeroThreshold = 1e-10

	// dB conversion for amplitude ratios
	dbMultiplier = 20.0

	// Tap counts at or above this use the FFT evaluator in MethodAuto.
	// Below it the table-driven direct DTFT is faster for typical
	// response resolutions (512-8192 points).
	minTapsForFFT = 64

	// e^{-jπm/N} repeats every 2N samples of m.
	fullCircle = 2

	// Relative tolerance (to the peak coefficient) for symmetry classification.
	symmetryTolerance = 1e-9
)
