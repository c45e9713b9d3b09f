package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coe "github.com/tphakala/go-coe-analyzer"
)

const testSampleRate = 40e6

func analyzeTaps(t *testing.T, taps coe.TapArray, resolution int) *coe.Result {
	t.Helper()
	cfg := coe.DefaultConfig()
	cfg.SampleRate = testSampleRate
	cfg.Resolution = resolution

	res, err := coe.AnalyzeTaps(taps, &cfg)
	require.NoError(t, err)
	return res
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "csv": FormatCSV, " json ": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.NotEqual(t, "unknown", got.String())
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, analyzeTaps(t, coe.TapArray{1}, 4), Format(9)), ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	res := analyzeTaps(t, coe.TapArray{1, -1}, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 9)
	assert.Equal(t, responseHeader, records[0])

	// The DC zero of a first difference is written as -Inf.
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "-Inf", records[1][1])

	f, err := strconv.ParseFloat(records[2][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, testSampleRate/16, f, 1e-6)
}

func TestWriteImpulseCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteImpulseCSV(&buf, coe.TapArray{0.5, -0.25, 1e-9}))

	assert.Equal(t, "tap,coefficient\n0,0.5\n1,-0.25\n2,1e-09\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	res := analyzeTaps(t, coe.TapArray{1, -1}, 4)
	res.Source = "diff.coe"
	res.Header.Radix = 10

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatJSON))

	var doc struct {
		Source      string     `json:"source"`
		SampleRate  float64    `json:"sample_rate_hz"`
		Resolution  int        `json:"resolution"`
		Impulse     []float64  `json:"impulse"`
		FrequencyHz []float64  `json:"frequency_hz"`
		MagnitudeDB []*float64 `json:"magnitude_db"`
		Phase       []float64  `json:"phase_rad"`
		Header      struct {
			Radix int `json:"radix"`
		} `json:"header"`
		Summary struct {
			NumTaps  int      `json:"num_taps"`
			DCGainDB *float64 `json:"dc_gain_db"`
			Symmetry string   `json:"symmetry"`
			Method   string   `json:"method"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "diff.coe", doc.Source)
	assert.Equal(t, testSampleRate, doc.SampleRate)
	assert.Equal(t, 4, doc.Resolution)
	assert.Equal(t, []float64{1, -1}, doc.Impulse)
	assert.Len(t, doc.FrequencyHz, 4)
	assert.Len(t, doc.Phase, 4)
	require.Len(t, doc.MagnitudeDB, 4)
	assert.Nil(t, doc.MagnitudeDB[0], "-Inf encodes as null")
	require.NotNil(t, doc.MagnitudeDB[2])
	assert.InDelta(t, 20*math.Log10(math.Sqrt2), *doc.MagnitudeDB[2], 1e-9)
	assert.Equal(t, 10, doc.Header.Radix)
	assert.Equal(t, 2, doc.Summary.NumTaps)
	assert.Nil(t, doc.Summary.DCGainDB)
	assert.Equal(t, "antisymmetric", doc.Summary.Symmetry)
	assert.Equal(t, "direct", doc.Summary.Method)
}

func TestWriteJSON_NonFiniteTaps(t *testing.T) {
	taps, err := coe.ParseCoefficientsReader(strings.NewReader("CoefData = 1, NaN, 1;"), "nan.coe")
	require.NoError(t, err)
	res := analyzeTaps(t, taps, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatJSON))

	var doc struct {
		Impulse     []*float64 `json:"impulse"`
		MagnitudeDB []*float64 `json:"magnitude_db"`
		Phase       []*float64 `json:"phase_rad"`
		Summary     struct {
			PeakGainDB      *float64 `json:"peak_gain_db"`
			PeakFrequency   *float64 `json:"peak_frequency_hz"`
			CutoffFrequency *float64 `json:"cutoff_frequency_hz"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Impulse, 3)
	assert.Nil(t, doc.Impulse[1])
	require.NotNil(t, doc.Impulse[0])
	assert.Equal(t, 1.0, *doc.Impulse[0])

	require.Len(t, doc.MagnitudeDB, 8)
	for k := range doc.MagnitudeDB {
		assert.Nil(t, doc.MagnitudeDB[k], "magnitude %d", k)
		assert.Nil(t, doc.Phase[k], "phase %d", k)
	}
	assert.Nil(t, doc.Summary.PeakGainDB)
	require.NotNil(t, doc.Summary.CutoffFrequency)
	assert.Zero(t, *doc.Summary.CutoffFrequency)
	require.NotNil(t, doc.Summary.PeakFrequency)
	assert.Zero(t, *doc.Summary.PeakFrequency)
}

func TestWriteText_NonFiniteTaps(t *testing.T) {
	res := analyzeTaps(t, coe.TapArray{1, math.NaN(), 1}, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatText))
	assert.Contains(t, buf.String(), "undefined (non-finite response)")
	assert.NotContains(t, buf.String(), "NaN MHz")
}

func TestWriteText(t *testing.T) {
	res := analyzeTaps(t, coe.TapArray{1, 1}, 2048)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatText))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Coefficient analysis: (in-memory taps)\n"))
	assert.Contains(t, out, "Number of taps:")
	assert.Contains(t, out, "[1 1]")
	assert.Contains(t, out, "40 MHz")
	assert.Contains(t, out, "6.02 dB")
	assert.Contains(t, out, "symmetric")
	assert.Contains(t, out, "0.5 samples")
}

func TestImpulseSamples(t *testing.T) {
	data, err := ImpulseSamples(coe.TapArray{0.5, -1, 0.25}, 16)
	require.NoError(t, err)
	assert.Equal(t, []int{16384, -32767, 8192}, data)

	data, err = ImpulseSamples(coe.TapArray{0, 0}, 24)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, data)

	_, err = ImpulseSamples(coe.TapArray{1}, 8)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestWriteImpulseWAV_RoundTrip(t *testing.T) {
	taps := coe.TapArray{0.001, 0.0023, -0.0004, 0.5, 0.5, -0.0004, 0.0023, 0.001}
	path := filepath.Join(t.TempDir(), "impulse.wav")

	for _, depth := range []int{16, 24, 32} {
		require.NoError(t, WriteImpulseWAV(path, taps, testSampleRate, depth))

		f, err := os.Open(path)
		require.NoError(t, err)

		dec := wav.NewDecoder(f)
		require.True(t, dec.IsValidFile())
		buf, err := dec.FullPCMBuffer()
		require.NoError(t, err)
		_ = f.Close()

		assert.Equal(t, uint32(testSampleRate), dec.SampleRate)
		assert.Equal(t, uint16(depth), dec.BitDepth)
		assert.Equal(t, uint16(1), dec.NumChans)

		want, err := ImpulseSamples(taps, depth)
		require.NoError(t, err)
		assert.Equal(t, want, buf.Data, "bit depth %d", depth)
	}
}

func TestWriteImpulseWAV_Errors(t *testing.T) {
	dir := t.TempDir()

	assert.Error(t, WriteImpulseWAV(filepath.Join(dir, "a.wav"), nil, testSampleRate, 16))
	assert.Error(t, WriteImpulseWAV(filepath.Join(dir, "b.wav"), coe.TapArray{1}, 0, 16))
	assert.ErrorIs(t, WriteImpulseWAV(filepath.Join(dir, "c.wav"), coe.TapArray{1}, testSampleRate, 12), ErrUnsupportedBitDepth)

	err := WriteImpulseWAV("/nonexistent/dir/out.wav", coe.TapArray{1}, testSampleRate, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
