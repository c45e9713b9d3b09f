package coe

// Result carries the three charting artifacts of an analysis run, the
// impulse response (Taps, indexed by tap position) and the magnitude and
// phase curves (index-aligned with Response.Frequencies), plus a summary.
type Result struct {
	// Source is the analyzed file, empty for in-memory taps.
	Source string

	// Header is the metadata that preceded CoefData in the file.
	Header Header

	Taps         TapArray
	Response     *FrequencyResponse
	MagnitudeDB  []float64
	PhaseRadians []float64
	Summary      Summary
}

// Analyze loads cfg.CoeFile, evaluates its frequency response and derives
// the magnitude and phase curves. It is a pure function of the file
// contents and cfg: repeated calls yield identical results.
func Analyze(cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, &InvalidInputError{Field: "config", Value: nil, Reason: "must not be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := LoadCoefficients(cfg.CoeFile)
	if err != nil {
		return nil, err
	}

	res, err := analyze(doc.Taps, cfg)
	if err != nil {
		return nil, err
	}
	res.Source = doc.Path
	res.Header = doc.Header

	return res, nil
}

// AnalyzeTaps analyzes an in-memory tap array. cfg.CoeFile is ignored.
func AnalyzeTaps(taps TapArray, cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, &InvalidInputError{Field: "config", Value: nil, Reason: "must not be nil"}
	}
	if err := cfg.validateParams(); err != nil {
		return nil, err
	}

	owned := make(TapArray, len(taps))
	copy(owned, taps)

	return analyze(owned, cfg)
}

func analyze(taps TapArray, cfg *Config) (*Result, error) {
	resp, err := ComputeFrequencyResponseWith(taps, cfg.SampleRate, cfg.Resolution, cfg.Method)
	if err != nil {
		return nil, err
	}

	mags := resp.MagnitudesDB()

	return &Result{
		Taps:         taps,
		Response:     resp,
		MagnitudeDB:  mags,
		PhaseRadians: resp.Phases(),
		Summary:      summarize(taps, resp, mags),
	}, nil
}
