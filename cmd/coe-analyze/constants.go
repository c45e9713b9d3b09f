package main

// Configuration keys. Each is a command-line flag, a config file key and,
// upper-cased with '-' replaced by '_' and prefixed with COE_, an
// environment variable.
const (
	keyConfig      = "config"
	keyVerbose     = "verbose"
	keySampleRate  = "sample-rate"
	keyCoeFile     = "coe-file"
	keyResolution  = "resolution"
	keyMethod      = "method"
	keyFormat      = "format"
	keyOutput      = "output"
	keyImpulseCSV  = "impulse-csv"
	keyImpulseWAV  = "impulse-wav"
	keyWAVBitDepth = "wav-bit-depth"

	keyCutoff      = "cutoff"
	keyTransition  = "transition"
	keyAttenuation = "attenuation"
	keyTaps        = "taps"
	keyWidth       = "width"
)

const (
	envPrefix  = "COE"
	configName = "coe-analyze" // coe-analyze.{toml,yaml,json} in the working directory

	stdioPath = "-"
)

// CLI defaults
const (
	defaultMethod      = "auto"
	defaultFormat      = "text"
	defaultWAVBitDepth = 24

	// Design defaults: a 5 MHz lowpass for a 40 MHz ADC clock.
	defaultCutoffHz      = 5e6
	defaultTransitionHz  = 1e6
	defaultAttenuationDB = 60.0
)

// Conversion constants
const (
	hzPerMHz = 1e6
)
