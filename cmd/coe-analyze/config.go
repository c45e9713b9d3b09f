package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	coe "github.com/tphakala/go-coe-analyzer"
	"github.com/tphakala/go-coe-analyzer/internal/export"
)

// loadConfig layers flags, COE_* environment variables and an optional
// config file into v. An explicit --config must exist; the implicit
// coe-analyze.* lookup in the working directory may find nothing.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// analyzeOptions holds the resolved settings of an analysis run.
type analyzeOptions struct {
	config      coe.Config
	format      export.Format
	output      string
	impulseCSV  string
	impulseWAV  string
	wavBitDepth int
	verbose     bool
}

func analyzeOptionsFrom(v *viper.Viper, args []string) (*analyzeOptions, error) {
	method, err := coe.ParseMethod(v.GetString(keyMethod))
	if err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return nil, err
	}

	cfg := coe.DefaultConfig()
	cfg.CoeFile = v.GetString(keyCoeFile)
	if len(args) > 0 {
		cfg.CoeFile = args[0]
	}
	cfg.SampleRate = v.GetFloat64(keySampleRate)
	cfg.Resolution = v.GetInt(keyResolution)
	cfg.Method = method

	return &analyzeOptions{
		config:      cfg,
		format:      format,
		output:      v.GetString(keyOutput),
		impulseCSV:  v.GetString(keyImpulseCSV),
		impulseWAV:  v.GetString(keyImpulseWAV),
		wavBitDepth: v.GetInt(keyWAVBitDepth),
		verbose:     v.GetBool(keyVerbose),
	}, nil
}

// designOptions holds the resolved settings of a design run.
type designOptions struct {
	sampleRate  float64
	cutoff      float64
	transition  float64
	attenuation float64
	taps        int
	width       int
	output      string
	verbose     bool
}

func designOptionsFrom(v *viper.Viper) (*designOptions, error) {
	opts := &designOptions{
		sampleRate:  v.GetFloat64(keySampleRate),
		cutoff:      v.GetFloat64(keyCutoff),
		transition:  v.GetFloat64(keyTransition),
		attenuation: v.GetFloat64(keyAttenuation),
		taps:        v.GetInt(keyTaps),
		width:       v.GetInt(keyWidth),
		output:      v.GetString(keyOutput),
		verbose:     v.GetBool(keyVerbose),
	}

	if !(opts.sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate %g Hz must be positive", coe.ErrInvalidInput, opts.sampleRate)
	}
	if opts.taps < 0 {
		return nil, fmt.Errorf("%w: taps %d must not be negative", coe.ErrInvalidInput, opts.taps)
	}
	if opts.width < 0 {
		return nil, fmt.Errorf("%w: width %d must not be negative", coe.ErrInvalidInput, opts.width)
	}

	return opts, nil
}
