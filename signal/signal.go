// Package signal holds the waveform counterpart of the spectrogram
// transforms: an in-memory multi-channel audio buffer and the sample-level
// augmentations (gain, cutout, signal loss) applied before any
// time-frequency decomposition.
package signal

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Audio is a multi-channel in-memory waveform
type Audio struct {
	// Data is indexed [channel][sample]
	Data [][]float64

	SampleRate int // Hz
}

// New allocates a silent audio buffer with the given extents
func New(channels, samples, sampleRate int) *Audio {
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, samples)
	}
	return &Audio{Data: data, SampleRate: sampleRate}
}

// Channels returns the channel count
func (a *Audio) Channels() int {
	return len(a.Data)
}

// Samples returns the per-channel sample count
func (a *Audio) Samples() int {
	if len(a.Data) == 0 {
		return 0
	}
	return len(a.Data[0])
}

// Duration returns the clip length in seconds
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0.0
	}
	return float64(a.Samples()) / float64(a.SampleRate)
}

// Clone returns a deep copy sharing no data with the receiver
func (a *Audio) Clone() *Audio {
	out := &Audio{
		Data:       make([][]float64, len(a.Data)),
		SampleRate: a.SampleRate,
	}
	for c, channel := range a.Data {
		out.Data[c] = make([]float64, len(channel))
		copy(out.Data[c], channel)
	}
	return out
}

// ApplyGain scales every sample in place and returns the receiver
func (a *Audio) ApplyGain(gain float64) *Audio {
	for _, channel := range a.Data {
		floats.Scale(gain, channel)
	}
	return a
}

// CutOut zeroes a random contiguous region covering a fraction of the clip,
// the same region across all channels
type CutOut struct {
	pct float64
	rng *rand.Rand
}

// NewCutOut creates a CutOut removing pct (0-1) of the samples per call
func NewCutOut(pct float64) (*CutOut, error) {
	return NewCutOutWithRand(pct, nil)
}

// NewCutOutWithRand creates a CutOut drawing from the given random source
func NewCutOutWithRand(pct float64, rng *rand.Rand) (*CutOut, error) {
	if pct < 0 || pct > 1 {
		return nil, fmt.Errorf("cutout fraction must be in [0, 1], got %g", pct)
	}
	return &CutOut{pct: pct, rng: rng}, nil
}

// Apply zeroes the chosen region in place and returns the audio
func (co *CutOut) Apply(a *Audio) *Audio {
	samples := a.Samples()
	maskLen := int(float64(samples) * co.pct)
	if maskLen == 0 {
		return a
	}

	start := randIntN(co.rng, samples-maskLen+1)
	for _, channel := range a.Data {
		for i := start; i < start+maskLen; i++ {
			channel[i] = 0.0
		}
	}
	return a
}

// LoseSignal drops individual sample positions at random, zeroing the same
// positions across all channels
type LoseSignal struct {
	pct float64
	rng *rand.Rand
}

// NewLoseSignal creates a LoseSignal dropping each position with
// probability pct (0-1)
func NewLoseSignal(pct float64) (*LoseSignal, error) {
	return NewLoseSignalWithRand(pct, nil)
}

// NewLoseSignalWithRand creates a LoseSignal drawing from the given random source
func NewLoseSignalWithRand(pct float64, rng *rand.Rand) (*LoseSignal, error) {
	if pct < 0 || pct > 1 {
		return nil, fmt.Errorf("loss fraction must be in [0, 1], got %g", pct)
	}
	return &LoseSignal{pct: pct, rng: rng}, nil
}

// Apply drops sample positions in place and returns the audio
func (ls *LoseSignal) Apply(a *Audio) *Audio {
	samples := a.Samples()
	for i := range samples {
		if randFloat64(ls.rng) <= ls.pct {
			for _, channel := range a.Data {
				channel[i] = 0.0
			}
		}
	}
	return a
}

func randIntN(rng *rand.Rand, n int) int {
	if n < 2 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

func randFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
