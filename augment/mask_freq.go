package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// MaskFreq blanks contiguous frequency-bin bands with a fill value,
// following Google SpecAugment (https://arxiv.org/abs/1904.08779)
type MaskFreq struct {
	numMasks int
	size     int
	start    *int
	value    *float64
	rng      *rand.Rand
}

// MaskFreqParams contains parameters for MaskFreq
type MaskFreqParams struct {
	NumMasks int        `json:"num_masks"`       // Number of masked bands (default: 1)
	Size     int        `json:"size"`            // Band height in frequency bins (default: 20)
	Start    *int       `json:"start,omitempty"` // Fixed start bin for the first mask; nil picks one at random
	Value    *float64   `json:"value,omitempty"` // Fill value; nil uses the per-channel mean at call time
	Rand     *rand.Rand `json:"-"`               // Optional random source for deterministic runs
}

// NewMaskFreq creates a MaskFreq with default parameters
func NewMaskFreq() *MaskFreq {
	return NewMaskFreqWithParams(MaskFreqParams{})
}

// NewMaskFreqWithParams creates a MaskFreq with custom parameters
func NewMaskFreqWithParams(params MaskFreqParams) *MaskFreq {
	if params.NumMasks <= 0 {
		params.NumMasks = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	return &MaskFreq{
		numMasks: params.NumMasks,
		size:     params.Size,
		start:    params.Start,
		value:    params.Value,
		rng:      params.Rand,
	}
}

// Name implements Transform
func (m *MaskFreq) Name() string {
	return "mask_freq"
}

// Apply overwrites numMasks frequency bands of size bins each across the
// full time extent, modifying sg in place. The configured start only affects
// the first mask; later masks always use fresh random positions.
func (m *MaskFreq) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	freqBins := sg.FreqBins()
	bound := freqBins - m.size
	if bound < 0 {
		return nil, fmt.Errorf("mask size %d does not fit %d frequency bins in spectrogram of shape %s",
			m.size, freqBins, shapeString(sg))
	}

	// Fill values are fixed before any band is overwritten
	fill := make([]float64, sg.Channels())
	for c := range fill {
		if m.value != nil {
			fill[c] = *m.value
		} else {
			fill[c] = sg.ChannelMean(c)
		}
	}

	start := 0
	if m.start != nil {
		start = *m.start
	} else {
		start = randIntN(m.rng, bound+1)
	}

	for range m.numMasks {
		if start < 0 || start > bound {
			return nil, fmt.Errorf("start value %d out of range for spectrogram of shape %s",
				start, shapeString(sg))
		}

		for c, channel := range sg.Data {
			for f := start; f < start+m.size; f++ {
				row := channel[f]
				for t := range row {
					row[t] = fill[c]
				}
			}
		}

		// Position of the next mask
		start = randIntN(m.rng, bound+1)
	}

	return sg, nil
}
