package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	coe "github.com/tphakala/go-coe-analyzer"
	"github.com/tphakala/go-coe-analyzer/internal/export"
)

const decimalRadix = 10

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "coe-analyze [file.coe]",
		Short: "Analyze the frequency response of a FIR coefficient file",
		Long: `coe-analyze parses the CoefData taps of a .coe coefficient file, evaluates
the filter's frequency response on [0, fs/2) and reports the impulse
response, magnitude (dB) and phase (radians) curves.

Use "-" as the file to read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := analyzeOptionsFrom(v, args)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String(keyConfig, "", "Config file (default ./coe-analyze.{toml,yaml,json})")
	pf.Float64(keySampleRate, coe.DefaultSampleRate, "Sample rate the filter runs at, in Hz")
	pf.BoolP(keyVerbose, "v", false, "Verbose output")

	f := cmd.Flags()
	f.String(keyCoeFile, "", "Coefficient file to analyze (or pass it as an argument)")
	f.Int(keyResolution, coe.DefaultResolution, "Number of frequency points on [0, fs/2)")
	f.String(keyMethod, defaultMethod, "Response evaluation: auto, direct or fft")
	f.String(keyFormat, defaultFormat, "Report format: text, csv or json")
	f.StringP(keyOutput, "o", "", "Write the report to this file instead of stdout")
	f.String(keyImpulseCSV, "", "Also write the impulse response as CSV to this file")
	f.String(keyImpulseWAV, "", "Also write the impulse response as a mono WAV file")
	f.Int(keyWAVBitDepth, defaultWAVBitDepth, "Bit depth of the impulse WAV: 16, 24 or 32")

	cmd.AddCommand(newDesignCommand(v))

	return cmd
}

func runAnalyze(in io.Reader, out io.Writer, opts *analyzeOptions) error {
	cfg := opts.config
	if cfg.CoeFile == "" {
		return fmt.Errorf("%w: no coefficient file given (use --coe-file or an argument)", coe.ErrInvalidInput)
	}

	if opts.verbose {
		log.Printf("Input: %s", cfg.CoeFile)
		log.Printf("Sample rate: %.6g MHz", cfg.SampleRate/hzPerMHz)
		log.Printf("Resolution: %d points", cfg.Resolution)
		log.Printf("Method: %s", cfg.Method)
	}

	res, err := analyzeInput(in, &cfg)
	if err != nil {
		return err
	}

	if r := res.Header.Radix; r != 0 && r != decimalRadix {
		log.Printf("warning: %s declares Radix = %d; CoefData values are read as decimal", cfg.CoeFile, r)
	}

	if opts.verbose {
		s := res.Summary
		log.Printf("Taps: %d (%s)", s.NumTaps, s.Symmetry)
		log.Printf("Evaluated with %s method", s.Method)
		log.Printf("Peak gain: %.2f dB at %.6g MHz", s.PeakGainDB, s.PeakFrequency/hzPerMHz)
	}

	if err := writeOutput(out, opts.output, func(w io.Writer) error {
		return export.Write(w, res, opts.format)
	}); err != nil {
		return err
	}

	if opts.impulseCSV != "" {
		if err := writeOutput(out, opts.impulseCSV, func(w io.Writer) error {
			return export.WriteImpulseCSV(w, res.Taps)
		}); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Impulse CSV: %s", opts.impulseCSV)
		}
	}

	if opts.impulseWAV != "" {
		if err := export.WriteImpulseWAV(opts.impulseWAV, res.Taps, cfg.SampleRate, opts.wavBitDepth); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Impulse WAV: %s (%d-bit)", opts.impulseWAV, opts.wavBitDepth)
		}
	}

	return nil
}

// analyzeInput analyzes cfg.CoeFile, reading it from in when it is "-".
func analyzeInput(in io.Reader, cfg *coe.Config) (*coe.Result, error) {
	if cfg.CoeFile != stdioPath {
		return coe.Analyze(cfg)
	}

	taps, err := coe.ParseCoefficientsReader(in, "<stdin>")
	if err != nil {
		return nil, err
	}
	res, err := coe.AnalyzeTaps(taps, cfg)
	if err != nil {
		return nil, err
	}
	res.Source = "<stdin>"

	return res, nil
}

// writeOutput runs write against path, or against stdout when path is
// empty or "-". A file is created fresh and its Close error is reported.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == stdioPath {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return write(f)
}
