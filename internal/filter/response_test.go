package filter

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-coe-analyzer/internal/testutil"
)

// naiveResponse is the textbook DTFT used as a reference.
func naiveResponse(coeffs []float64, numPoints int) []complex128 {
	h := make([]complex128, numPoints)
	for k := range numPoints {
		omega := math.Pi * float64(k) / float64(numPoints)
		var sum complex128
		for n, c := range coeffs {
			sum += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(n)))
		}
		h[k] = sum
	}
	return h
}

func TestResponse_SingleTapIsAllPass(t *testing.T) {
	for _, method := range []Method{MethodDirect, MethodFFT} {
		t.Run(method.String(), func(t *testing.T) {
			h := Response([]float64{1.0}, 4, method)
			require.Len(t, h, 4)
			for k := range h {
				assert.InDelta(t, 1.0, real(h[k]), testutil.DefaultTolerance)
				assert.InDelta(t, 0.0, imag(h[k]), testutil.DefaultTolerance)
				assert.InDelta(t, 0.0, MagnitudeDB(h[k]), testutil.DefaultTolerance)
			}
		})
	}
}

func TestResponse_DirectSingleTapIsExact(t *testing.T) {
	h := Response([]float64{1.0}, 4, MethodDirect)
	for k := range h {
		assert.Equal(t, 1.0, real(h[k]))
		assert.Zero(t, imag(h[k]))
	}
}

func TestResponse_Length(t *testing.T) {
	for _, method := range []Method{MethodDirect, MethodFFT} {
		for _, n := range []int{1, 7, 8, 1000} {
			assert.Len(t, Response([]float64{1, 2, 3}, n, method), n, "%s n=%d", method, n)
		}
	}
}

func TestResponse_MatchesNaiveDTFT(t *testing.T) {
	taps, err := DesignLowPassFilter(FilterParams{NumTaps: 31, CutoffFreq: 0.2, Attenuation: 60, Gain: 1})
	require.NoError(t, err)

	want := naiveResponse(taps, 256)
	for _, method := range []Method{MethodDirect, MethodFFT, MethodAuto} {
		t.Run(method.String(), func(t *testing.T) {
			got := Response(taps, 256, method)
			testutil.AssertComplexInDelta(t, want, got, testutil.ResponseTolerance)
		})
	}
}

func TestResponse_FFTFoldsLongFilters(t *testing.T) {
	// 40 taps evaluated at 8 points: the FFT size (16) is shorter than the filter.
	taps := make([]float64, 40)
	for i := range taps {
		taps[i] = math.Sin(0.3*float64(i)) + 0.1*float64(i%7)
	}

	want := naiveResponse(taps, 8)
	got := Response(taps, 8, MethodFFT)
	testutil.AssertComplexInDelta(t, want, got, testutil.ResponseTolerance)
}

func TestResponse_TwoTapMovingAverage(t *testing.T) {
	h := Response([]float64{1, 1}, 2048, MethodDirect)

	assert.InDelta(t, 20*math.Log10(2), MagnitudeDB(h[0]), testutil.DefaultTolerance)

	// |H| = 2cos(ω/2) falls monotonically towards the zero at Nyquist.
	prev := MagnitudeDB(h[0])
	for k := 1; k < len(h); k++ {
		db := MagnitudeDB(h[k])
		assert.Less(t, db, prev, "k=%d", k)
		prev = db
	}
	assert.Less(t, prev, -50.0)
}

func TestResponse_Deterministic(t *testing.T) {
	taps := []float64{0.1, -0.25, 0.7, -0.25, 0.1}
	for _, method := range []Method{MethodDirect, MethodFFT} {
		a := Response(taps, 512, method)
		b := Response(taps, 512, method)
		assert.Equal(t, a, b)
	}
}

func TestMethod_Resolve(t *testing.T) {
	assert.Equal(t, MethodDirect, MethodAuto.Resolve(minTapsForFFT-1))
	assert.Equal(t, MethodFFT, MethodAuto.Resolve(minTapsForFFT))
	assert.Equal(t, MethodDirect, MethodDirect.Resolve(1000))
	assert.Equal(t, MethodFFT, MethodFFT.Resolve(1))
	assert.Equal(t, "unknown", Method(42).String())
}

func TestMagnitudeDB(t *testing.T) {
	assert.InDelta(t, 0.0, MagnitudeDB(1), testutil.DefaultTolerance)
	assert.InDelta(t, -20.0, MagnitudeDB(complex(0, 0.1)), testutil.DefaultTolerance)
	assert.InDelta(t, 6.0206, MagnitudeDB(-2), 1e-4)
	assert.True(t, math.IsInf(MagnitudeDB(0), -1))
}

func TestPhase_Range(t *testing.T) {
	assert.InDelta(t, 0.0, Phase(1), testutil.DefaultTolerance)
	assert.InDelta(t, math.Pi/2, Phase(complex(0, 1)), testutil.DefaultTolerance)
	assert.InDelta(t, -math.Pi/2, Phase(complex(0, -1)), testutil.DefaultTolerance)
	assert.Equal(t, math.Pi, Phase(complex(-1, 0)))
	assert.Equal(t, math.Pi, Phase(complex(-1, math.Copysign(0, -1))))
}

func TestDCGain(t *testing.T) {
	assert.InDelta(t, 2.5, DCGain([]float64{1, -0.5, 2}), testutil.DefaultTolerance)
}

func BenchmarkResponse(b *testing.B) {
	taps, _ := DesignLowPassFilter(FilterParams{NumTaps: 127, CutoffFreq: 0.2, Attenuation: 80, Gain: 1})
	for _, method := range []Method{MethodDirect, MethodFFT} {
		b.Run(method.String(), func(b *testing.B) {
			for b.Loop() {
				_ = Response(taps, 2048, method)
			}
		})
	}
}
