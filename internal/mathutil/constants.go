package mathutil

import "math"

// Bessel I₀ polynomial approximation (Abramowitz & Stegun 9.8.1 and 9.8.2).
const (
	besselSmallArgThreshold = 3.75 // |x| below which the power series form is used
)

// Coefficients for |x| < 3.75, in t = (x/3.75)².
const (
	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.360768e-1
	besselI0Coeff6 = 0.45813e-2
)

// Coefficients for |x| >= 3.75, in t = 3.75/|x|.
const (
	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.1328592e-1
	besselI0AsympCoeff2 = 0.225319e-2
	besselI0AsympCoeff3 = -0.157565e-2
	besselI0AsympCoeff4 = 0.916281e-2
	besselI0AsympCoeff5 = -0.2057706e-1
	besselI0AsympCoeff6 = 0.2635537e-1
	besselI0AsympCoeff7 = -0.1647633e-1
	besselI0AsympCoeff8 = 0.392377e-2
)

// Kaiser & Schafer empirical window formulas.
const (
	kaiserAttHigh   = 50.0 // dB
	kaiserAttMedium = 21.0 // dB

	kaiserBetaHighCoeff   = 0.1102
	kaiserBetaHighOffset  = 8.7
	kaiserBetaMediumCoeff = 0.5842
	kaiserBetaMediumPower = 0.4
	kaiserBetaMediumLin   = 0.07886

	kaiserBetaMinThreshold = 0.1
)

// Filter length estimate: N ≈ (att - 7.95) / (2.285 · 2π · Δf).
const (
	kaiserLengthOffset     = 7.95
	kaiserLengthMultiplier = 2.285
	twoPi                  = 2 * math.Pi

	// Bounds on designed filter length. The upper bound matches the largest
	// coefficient set common FIR compiler cores accept.
	minFilterLength = 3
	maxFilterLength = 8191

	defaultTransitionBW = 0.01
)
