package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tphakala/go-coe-analyzer/internal/coefile"
	"github.com/tphakala/go-coe-analyzer/internal/filter"
	"github.com/tphakala/go-coe-analyzer/internal/mathutil"
)

const unityGain = 1.0

func newDesignCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Generate a Kaiser-window lowpass coefficient file",
		Long: `design writes a .coe file holding a Kaiser-window lowpass FIR filter.
Frequencies are in Hz relative to --sample-rate. With --taps 0 the length
is estimated from --attenuation and --transition. With --width the taps
are quantized to signed integers of that many bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := designOptionsFrom(v)
			if err != nil {
				return err
			}
			return runDesign(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Float64(keyCutoff, defaultCutoffHz, "Cutoff (-6 dB) frequency in Hz")
	f.Float64(keyTransition, defaultTransitionHz, "Transition bandwidth in Hz")
	f.Float64(keyAttenuation, defaultAttenuationDB, "Stopband attenuation in dB")
	f.Int(keyTaps, 0, "Number of taps (0 estimates it from attenuation and transition)")
	f.Int(keyWidth, 0, "Quantize to signed integers of this many bits (0 keeps decimal values)")
	f.StringP(keyOutput, "o", "", "Write the coefficient file here instead of stdout")

	return cmd
}

func runDesign(out io.Writer, opts *designOptions) error {
	cutoff := opts.cutoff / opts.sampleRate
	transition := opts.transition / opts.sampleRate

	var (
		taps []float64
		err  error
	)
	if opts.taps > 0 {
		taps, err = filter.DesignLowPassFilter(filter.FilterParams{
			NumTaps:     opts.taps,
			CutoffFreq:  cutoff,
			Attenuation: opts.attenuation,
			Gain:        unityGain,
		})
	} else {
		taps, err = filter.DesignLowPassFilterAuto(cutoff, transition, opts.attenuation, unityGain)
	}
	if err != nil {
		return err
	}

	beta := mathutil.KaiserBeta(opts.attenuation)
	header := coefile.Header{
		Radix: decimalRadix,
		Comments: []string{
			fmt.Sprintf("Kaiser lowpass, fs = %g Hz, cutoff = %g Hz, transition = %g Hz", opts.sampleRate, opts.cutoff, opts.transition),
			fmt.Sprintf("%d taps, beta = %.4f, attenuation = %g dB", len(taps), beta, opts.attenuation),
		},
	}

	if opts.width > 0 {
		q, scale, err := filter.Quantize(taps, opts.width)
		if err != nil {
			return err
		}
		taps = q
		header.CoefficientWidth = opts.width
		header.Comments = append(header.Comments, fmt.Sprintf("quantized to %d bits, scale = %g", opts.width, scale))
	}

	if opts.verbose {
		log.Printf("Designed %d taps (beta %.4f, ~%.1f dB stopband)", len(taps), beta, mathutil.KaiserAttenuation(beta))
		log.Printf("Cutoff: %.6g MHz, transition: %.6g MHz", opts.cutoff/hzPerMHz, opts.transition/hzPerMHz)
	}

	return writeOutput(out, opts.output, func(w io.Writer) error {
		return coefile.Write(w, header, taps)
	})
}
