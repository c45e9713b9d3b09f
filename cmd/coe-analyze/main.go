// Command coe-analyze reports the frequency response of the FIR filter in
// a .coe coefficient file.
//
// Usage:
//
//	coe-analyze filter.coe
//	coe-analyze --sample-rate 100e6 --resolution 4096 filter.coe
//	coe-analyze --format csv --output response.csv filter.coe
//	coe-analyze --impulse-wav impulse.wav filter.coe
//	cat filter.coe | coe-analyze -
//	coe-analyze design --cutoff 5e6 --transition 1e6 --width 16 -o lowpass.coe
//
// Settings may also come from COE_* environment variables (COE_SAMPLE_RATE)
// or a coe-analyze.{toml,yaml,json} file; flags take precedence.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("coe-analyze: ")

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
