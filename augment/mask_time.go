package augment

import (
	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// MaskTime blanks contiguous time-frame bands with a fill value, the
// SpecAugment time-masking counterpart of MaskFreq. It is implemented by
// transposing the frequency and time axes, delegating to MaskFreq, and
// transposing back, so it inherits MaskFreq's validation and randomization
// with the axis roles swapped.
type MaskTime struct {
	mf *MaskFreq
}

// MaskTimeParams contains parameters for MaskTime. Size and Start are
// measured in time frames.
type MaskTimeParams = MaskFreqParams

// NewMaskTime creates a MaskTime with default parameters
func NewMaskTime() *MaskTime {
	return NewMaskTimeWithParams(MaskTimeParams{})
}

// NewMaskTimeWithParams creates a MaskTime with custom parameters
func NewMaskTimeWithParams(params MaskTimeParams) *MaskTime {
	return &MaskTime{mf: NewMaskFreqWithParams(params)}
}

// Name implements Transform
func (m *MaskTime) Name() string {
	return "mask_time"
}

// Apply masks time-frame bands. The output shape always equals the input
// shape; the input tensor itself is left untouched.
func (m *MaskTime) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	transposed := sg.TransposeFreqTime()

	masked, err := m.mf.Apply(transposed)
	if err != nil {
		return nil, err
	}

	return masked.TransposeFreqTime(), nil
}
