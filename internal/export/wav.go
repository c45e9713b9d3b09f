package export

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	coe "github.com/tphakala/go-coe-analyzer"
	"gonum.org/v1/gonum/floats"
)

const (
	wavPCMFormat = 1 // WAVE_FORMAT_PCM
	monoChannels = 1
	maxWAVRateHz = math.MaxUint32
)

// ErrUnsupportedBitDepth is returned for bit depths other than 16, 24 or 32.
var ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

// ImpulseSamples converts taps to integer PCM samples of the given bit
// depth, scaled so the largest coefficient hits full scale. An all-zero
// filter yields silence.
func ImpulseSamples(taps coe.TapArray, bitDepth int) ([]int, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	fullScale := math.Ldexp(1, bitDepth-1) - 1
	data := make([]int, len(taps))

	peak := floats.Norm(taps, math.Inf(1))
	if peak == 0 {
		return data, nil
	}

	scale := fullScale / peak
	for i, c := range taps {
		data[i] = int(math.Round(c * scale))
	}
	return data, nil
}

// WriteImpulseWAV writes the taps as a mono PCM WAV file at sampleRate,
// peak normalized, for loading into audio and convolution tools.
func WriteImpulseWAV(path string, taps coe.TapArray, sampleRate float64, bitDepth int) (err error) {
	if len(taps) == 0 {
		return fmt.Errorf("write impulse wav: no taps")
	}
	rate := math.Round(sampleRate)
	if rate < 1 || rate > maxWAVRateHz {
		return fmt.Errorf("write impulse wav: sample rate %g Hz not representable", sampleRate)
	}

	data, err := ImpulseSamples(taps, bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, int(rate), bitDepth, monoChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: int(rate)},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write impulse samples: %w", err)
	}

	// Close patches the RIFF sizes in the header.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
