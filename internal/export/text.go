package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	coe "github.com/tphakala/go-coe-analyzer"
)

const (
	hzPerMHz     = 1e6
	previewTaps  = 10
	reportFormat = "  %-18s %s\n"
)

// WriteText writes a human readable report of the summary figures.
func WriteText(w io.Writer, res *coe.Result) error {
	bw := bufio.NewWriter(w)
	s := res.Summary

	source := res.Source
	if source == "" {
		source = "(in-memory taps)"
	}

	fmt.Fprintf(bw, "Coefficient analysis: %s\n", source)
	if res.Header.Radix != 0 {
		fmt.Fprintf(bw, reportFormat, "Radix:", fmt.Sprint(res.Header.Radix))
	}
	if res.Header.CoefficientWidth != 0 {
		fmt.Fprintf(bw, reportFormat, "Coefficient width:", fmt.Sprintf("%d bits", res.Header.CoefficientWidth))
	}
	fmt.Fprintf(bw, reportFormat, "Number of taps:", fmt.Sprint(s.NumTaps))
	fmt.Fprintf(bw, reportFormat, "First taps:", fmt.Sprint(res.Taps[:min(previewTaps, len(res.Taps))]))
	fmt.Fprintf(bw, reportFormat, "Sample rate:", fmt.Sprintf("%g MHz", res.Response.SampleRate/hzPerMHz))
	fmt.Fprintf(bw, reportFormat, "Resolution:", fmt.Sprintf("%d points (%s)", res.Response.Len(), s.Method))
	fmt.Fprintf(bw, reportFormat, "DC gain:", fmt.Sprintf("%.6g (%.2f dB)", s.DCGain, s.DCGainDB))
	fmt.Fprintf(bw, reportFormat, "Peak gain:", fmt.Sprintf("%.2f dB at %.4f MHz", s.PeakGainDB, s.PeakFrequency/hzPerMHz))
	switch {
	case math.IsNaN(s.PeakGainDB) || math.IsInf(s.PeakGainDB, 1):
		fmt.Fprintf(bw, reportFormat, "-3 dB cutoff:", "undefined (non-finite response)")
	case s.CutoffFrequency > 0:
		fmt.Fprintf(bw, reportFormat, "-3 dB cutoff:", fmt.Sprintf("%.4f MHz", s.CutoffFrequency/hzPerMHz))
	default:
		fmt.Fprintf(bw, reportFormat, "-3 dB cutoff:", "none")
	}
	fmt.Fprintf(bw, reportFormat, "Symmetry:", s.Symmetry.String())
	if s.LinearPhase {
		fmt.Fprintf(bw, reportFormat, "Group delay:", fmt.Sprintf("%g samples", s.GroupDelay))
	}

	return bw.Flush()
}
