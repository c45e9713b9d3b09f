package coefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const decimalRadix = 10

// Write emits a coefficient document with the header comments, Radix,
// Coefficient_Width (when non-zero) and a single-line CoefData
// assignment. Values are written in shortest round-trip decimal form, so
// Parse returns exactly the taps that were written.
func Write(w io.Writer, h Header, taps []float64) error {
	if len(taps) == 0 {
		return fmt.Errorf("write coefficient file: no taps")
	}

	bw := bufio.NewWriter(w)

	for _, c := range h.Comments {
		fmt.Fprintf(bw, "%s %s\n", commentPrefix, c)
	}

	radix := h.Radix
	if radix == 0 {
		radix = decimalRadix
	}
	fmt.Fprintf(bw, "%s = %d%s\n", keyRadix, radix, terminator)
	if h.CoefficientWidth > 0 {
		fmt.Fprintf(bw, "%s = %d%s\n", keyCoefficientWidth, h.CoefficientWidth, terminator)
	}

	fmt.Fprintf(bw, "%s = ", Marker)
	buf := make([]byte, 0, 32)
	for i, v := range taps {
		if i > 0 {
			bw.WriteString(tokenSep)
		}
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		bw.Write(buf)
	}
	bw.WriteString(terminator + "\n")

	return bw.Flush()
}
