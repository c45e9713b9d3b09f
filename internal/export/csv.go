package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	coe "github.com/tphakala/go-coe-analyzer"
)

var (
	responseHeader = []string{"frequency_hz", "magnitude_db", "phase_rad", "re", "im"}
	impulseHeader  = []string{"tap", "coefficient"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the magnitude and phase curves, one row per frequency
// point. A zero response is written as -Inf dB.
func WriteCSV(w io.Writer, res *coe.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(responseHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(responseHeader))
	for k, f := range res.Response.Frequencies {
		h := res.Response.Response[k]
		row[0] = formatFloat(f)
		row[1] = formatFloat(res.MagnitudeDB[k])
		row[2] = formatFloat(res.PhaseRadians[k])
		row[3] = formatFloat(real(h))
		row[4] = formatFloat(imag(h))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", k, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteImpulseCSV writes the taps indexed by position.
func WriteImpulseCSV(w io.Writer, taps coe.TapArray) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(impulseHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for n, c := range taps {
		if err := cw.Write([]string{strconv.Itoa(n), formatFloat(c)}); err != nil {
			return fmt.Errorf("write csv row %d: %w", n, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
