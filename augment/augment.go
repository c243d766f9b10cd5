// Package augment implements stateless spectrogram augmentation transforms
// for audio ML training pipelines: time cropping/padding, SpecAugment-style
// frequency and time masking, circular time shifting, delta features, and
// 2D resizing.
//
// Each transform is configured once at construction and applies to one
// spectrogram per call. A transform may modify the input tensor in place and
// return it, or return a freshly allocated spectrogram; callers that need
// the original should Clone it first. Transforms hold no mutable state
// between calls, so a single transform value is safe to use from concurrent
// data-loading workers as long as each call gets its own tensor and its own
// (or no) random source.
package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-augment/logging"
	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// Transform is a single augmentation operation over a spectrogram
type Transform interface {
	// Name identifies the transform in logs and wrapped errors
	Name() string

	// Apply transforms one spectrogram. The returned spectrogram may be
	// the input modified in place.
	Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error)
}

// Chain applies transforms sequentially to one spectrogram per call.
// It is composition glue only: no registration, scheduling, or retries.
type Chain struct {
	transforms []Transform
	logger     logging.Logger
}

// NewChain creates a chain over the given transforms
func NewChain(transforms ...Transform) *Chain {
	return &Chain{
		transforms: transforms,
		logger:     logging.GetGlobalLogger().WithFields(logging.Fields{"component": "augment"}),
	}
}

// WithLogger replaces the chain's logger and returns the chain
func (ch *Chain) WithLogger(logger logging.Logger) *Chain {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	ch.logger = logger
	return ch
}

// Apply runs every transform in order, stopping at the first failure.
// The error is wrapped with the failing transform's name.
func (ch *Chain) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	for _, tfm := range ch.transforms {
		out, err := tfm.Apply(sg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tfm.Name(), err)
		}

		ch.logger.Debug("applied transform", logging.Fields{
			"transform":   tfm.Name(),
			"channels":    out.Channels(),
			"freq_bins":   out.FreqBins(),
			"time_frames": out.TimeFrames(),
		})

		sg = out
	}

	return sg, nil
}

// randIntN returns a uniform integer in [0, n) from rng, falling back to the
// shared process-wide source when rng is nil. n < 2 always yields 0.
func randIntN(rng *rand.Rand, n int) int {
	if n < 2 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

// randFloat64 returns a uniform float in [0, 1)
func randFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}

// shapeString formats a tensor shape for error messages
func shapeString(sg *spectrogram.Spectrogram) string {
	return fmt.Sprintf("(%d, %d, %d)", sg.Channels(), sg.FreqBins(), sg.TimeFrames())
}
