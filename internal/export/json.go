package export

import (
	"encoding/json"
	"io"
	"math"

	coe "github.com/tphakala/go-coe-analyzer"
)

// number encodes a float64 as JSON, mapping the non-finite values JSON
// cannot represent (a -Inf dB response zero) to null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func numbers(s []float64) []number {
	out := make([]number, len(s))
	for i, v := range s {
		out[i] = number(v)
	}
	return out
}

type jsonHeader struct {
	Radix            int               `json:"radix,omitempty"`
	CoefficientWidth int               `json:"coefficient_width,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
	Comments         []string          `json:"comments,omitempty"`
}

type jsonSummary struct {
	NumTaps         int     `json:"num_taps"`
	DCGain          number  `json:"dc_gain"`
	DCGainDB        number  `json:"dc_gain_db"`
	PeakGainDB      number  `json:"peak_gain_db"`
	PeakFrequency   number  `json:"peak_frequency_hz"`
	CutoffFrequency number  `json:"cutoff_frequency_hz"`
	Symmetry        string  `json:"symmetry"`
	LinearPhase     bool    `json:"linear_phase"`
	GroupDelay      number  `json:"group_delay_samples"`
	Energy          number  `json:"energy"`
	Method          string  `json:"method"`
}

type jsonResult struct {
	Source       string      `json:"source,omitempty"`
	SampleRate   float64     `json:"sample_rate_hz"`
	Resolution   int         `json:"resolution"`
	Header       jsonHeader  `json:"header"`
	Summary      jsonSummary `json:"summary"`
	Impulse      []number    `json:"impulse"`
	FrequencyHz  []float64   `json:"frequency_hz"`
	MagnitudeDB  []number    `json:"magnitude_db"`
	PhaseRadians []number    `json:"phase_rad"`
}

// WriteJSON writes the impulse response, the magnitude and phase curves
// with their frequency axis, the summary and the file header as one JSON
// document.
func WriteJSON(w io.Writer, res *coe.Result) error {
	s := res.Summary
	doc := jsonResult{
		Source:     res.Source,
		SampleRate: res.Response.SampleRate,
		Resolution: res.Response.Len(),
		Header: jsonHeader{
			Radix:            res.Header.Radix,
			CoefficientWidth: res.Header.CoefficientWidth,
			Fields:           res.Header.Fields,
			Comments:         res.Header.Comments,
		},
		Summary: jsonSummary{
			NumTaps:         s.NumTaps,
			DCGain:          number(s.DCGain),
			DCGainDB:        number(s.DCGainDB),
			PeakGainDB:      number(s.PeakGainDB),
			PeakFrequency:   number(s.PeakFrequency),
			CutoffFrequency: number(s.CutoffFrequency),
			Symmetry:        s.Symmetry.String(),
			LinearPhase:     s.LinearPhase,
			GroupDelay:      number(s.GroupDelay),
			Energy:          number(s.Energy),
			Method:          s.Method.String(),
		},
		Impulse:      numbers(res.Taps),
		FrequencyHz:  res.Response.Frequencies,
		MagnitudeDB:  numbers(res.MagnitudeDB),
		PhaseRadians: numbers(res.PhaseRadians),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
