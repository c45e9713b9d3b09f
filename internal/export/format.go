// Package export writes analysis results in machine-readable forms for
// charting tools: CSV curves, JSON documents, a plain text report and the
// impulse response as a WAV file.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	coe "github.com/tphakala/go-coe-analyzer"
)

// Format selects the output encoding of a Result.
type Format int

const (
	FormatText Format = iota
	FormatCSV
	FormatJSON
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown output format")

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps "text", "csv" or "json" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w: %q (want text, csv or json)", ErrUnknownFormat, s)
	}
}

// Write encodes res to w in the given format.
func Write(w io.Writer, res *coe.Result, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, res)
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}
