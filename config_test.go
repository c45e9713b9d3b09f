package coe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultSampleRate, cfg.SampleRate)
	assert.Equal(t, DefaultResolution, cfg.Resolution)
	assert.Equal(t, MethodAuto, cfg.Method)
	assert.Empty(t, cfg.CoeFile)
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	valid.CoeFile = "fir20.coe"
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"missing_file", func(c *Config) { c.CoeFile = "  " }, "coe file"},
		{"zero_sample_rate", func(c *Config) { c.SampleRate = 0 }, "sample rate"},
		{"negative_resolution", func(c *Config) { c.Resolution = -1 }, "resolution"},
		{"unknown_method", func(c *Config) { c.Method = Method(7) }, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var ierr *InvalidInputError
			require.ErrorAs(t, err, &ierr)
			assert.Equal(t, tt.field, ierr.Field)
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"", MethodAuto},
		{"auto", MethodAuto},
		{"Direct", MethodDirect},
		{"dtft", MethodDirect},
		{" FFT ", MethodFFT},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMethod("goertzel")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
