package coe

// Analysis defaults.
const (
	// DefaultResolution is the number of frequency points evaluated on [0, π).
	DefaultResolution = 2048

	// DefaultSampleRate is the ADC clock of the radar IF chain the tool
	// was first written for (40 MHz).
	DefaultSampleRate = 40e6

	// MaxResolution bounds the evaluation grid to keep memory use sane.
	MaxResolution = 1 << 22
)

const (
	// cutoffDropDB is the drop below peak gain that defines the cutoff.
	cutoffDropDB = 3.0

	// errTextLimit truncates offending line text in error messages.
	errTextLimit = 80

	halfDivisor = 2.0
)
