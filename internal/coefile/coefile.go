// Package coefile reads and writes FIR coefficient (.coe) files: plain
// text documents of `key = value;` assignments and `;` comments whose
// CoefData assignment carries the comma separated filter taps.
package coefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Marker identifies the line carrying the coefficient list.
const Marker = "CoefData"

const (
	commentPrefix = ";"
	assignSep     = "="
	tokenSep      = ","
	terminator    = ";"

	// CoefData lines of wide filters easily exceed bufio's 64 KiB default.
	initialLineBuffer = 64 * 1024
	maxLineLength     = 64 * 1024 * 1024

	keyRadix            = "Radix"
	keyCoefficientWidth = "Coefficient_Width"
)

var (
	// ErrMarkerNotFound is returned when no line contains the CoefData marker.
	ErrMarkerNotFound = errors.New("no CoefData found")

	// ErrMissingAssignment is returned when the CoefData line has no '='.
	ErrMissingAssignment = errors.New("CoefData line has no '='")
)

// SyntaxError describes a malformed CoefData value.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // raw line text
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Header holds the assignments and comments that precede CoefData.
type Header struct {
	// Radix of the coefficient values as declared by the file (0 if absent).
	Radix int

	// CoefficientWidth in bits as declared by the file (0 if absent).
	CoefficientWidth int

	// Fields holds every `key = value` assignment seen before CoefData,
	// with the trailing ';' removed.
	Fields map[string]string

	// Comments holds the text of `;` comment lines without the prefix.
	Comments []string
}

// File is a parsed coefficient file.
type File struct {
	Header Header
	Taps   []float64

	// Line is the 1-based line number of the CoefData marker.
	Line int
}

// Parse reads a coefficient document. Lines are scanned in order and the
// first one containing Marker supplies the taps: the text after its first
// '=' is trimmed, trailing ';' removed, split on ',' and each token parsed
// as a float. A value that is empty or ends in ',' continues on the
// following lines until one ends with ';' (the multi-line layout many
// tools emit). Everything else is ignored apart from header bookkeeping.
func Parse(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)

	f := &File{Header: Header{Fields: make(map[string]string)}}
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if !strings.Contains(line, Marker) {
			f.Header.record(line)
			continue
		}

		_, value, ok := strings.Cut(line, assignSep)
		if !ok {
			return nil, &SyntaxError{Line: lineNo, Text: line, Err: ErrMissingAssignment}
		}
		value = strings.TrimSpace(value)
		startLine, startText := lineNo, line

		for continues(value) && sc.Scan() {
			lineNo++
			value += strings.TrimSpace(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read coefficient data: %w", err)
		}

		taps, err := ParseTokens(value)
		if err != nil {
			return nil, &SyntaxError{Line: startLine, Text: startText, Err: err}
		}
		f.Taps = taps
		f.Line = startLine
		return f, nil
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read coefficient file: %w", err)
	}
	return nil, ErrMarkerNotFound
}

// continues reports whether a CoefData value is still open.
func continues(value string) bool {
	return value == "" || strings.HasSuffix(value, tokenSep)
}

// ParseTokens parses a CoefData value ("v0, v1, ..., vn;") into taps.
// Magnitudes beyond float64 range parse as ±Inf, like "inf" itself.
func ParseTokens(value string) ([]float64, error) {
	value = strings.TrimRight(strings.TrimSpace(value), terminator)

	fields := strings.Split(value, tokenSep)
	taps := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		taps[i] = v
	}
	return taps, nil
}

// record stores a header line; malformed lines are skipped.
func (h *Header) record(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if strings.HasPrefix(trimmed, commentPrefix) {
		h.Comments = append(h.Comments, strings.TrimSpace(strings.TrimPrefix(trimmed, commentPrefix)))
		return
	}

	key, value, ok := strings.Cut(trimmed, assignSep)
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(value), terminator))
	if key == "" {
		return
	}
	h.Fields[key] = value

	switch {
	case strings.EqualFold(key, keyRadix):
		if n, err := strconv.Atoi(value); err == nil {
			h.Radix = n
		}
	case strings.EqualFold(key, keyCoefficientWidth):
		if n, err := strconv.Atoi(value); err == nil {
			h.CoefficientWidth = n
		}
	}
}
