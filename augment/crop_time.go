package augment

import (
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// CropTime forces a spectrogram to a fixed duration by randomly cropping a
// longer input or padding a shorter one
type CropTime struct {
	durationMS int
	padMode    PadMode
	rng        *rand.Rand
}

// CropTimeParams contains parameters for CropTime
type CropTimeParams struct {
	DurationMS int        `json:"duration_ms"` // Target duration in milliseconds
	PadMode    PadMode    `json:"pad_mode"`    // Fill strategy for short inputs (default: zeros)
	Rand       *rand.Rand `json:"-"`           // Optional random source for deterministic runs
}

// NewCropTime creates a CropTime targeting the given duration in milliseconds
func NewCropTime(durationMS int) *CropTime {
	return NewCropTimeWithParams(CropTimeParams{DurationMS: durationMS})
}

// NewCropTimeWithParams creates a CropTime with custom parameters
func NewCropTimeWithParams(params CropTimeParams) *CropTime {
	if params.PadMode == "" {
		params.PadMode = PadZeros
	}
	return &CropTime{
		durationMS: params.DurationMS,
		padMode:    params.PadMode,
		rng:        params.Rand,
	}
}

// Name implements Transform
func (ct *CropTime) Name() string {
	return "crop_time"
}

// TargetFrames returns the time-frame count the transform produces for the
// given audio parameters
func (ct *CropTime) TargetFrames(sampleRate, hopLength int) int {
	return (sampleRate*ct.durationMS)/(1000*hopLength) + 1
}

// Apply crops or pads sg to the target frame count. When the input is longer
// than the target, a uniformly random window is sliced out and the result
// carries Provenance with the covered sample range. Equal-width and padded
// outputs carry no provenance.
func (ct *CropTime) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	wCrop := ct.TargetFrames(sg.SampleRate, sg.HopLength)
	wSG := sg.TimeFrames()

	switch {
	case wSG == wCrop:
		return sg, nil

	case wSG < wCrop:
		return padToWidth(sg, wCrop, ct.padMode, ct.rng)

	default:
		cropStart := randIntN(ct.rng, wSG-wCrop+1)
		cropped, err := sg.SliceTime(cropStart, cropStart+wCrop)
		if err != nil {
			return nil, err
		}

		sampleStart := cropStart * sg.HopLength
		cropped.Provenance = &spectrogram.Provenance{
			SampleStart: sampleStart,
			SampleEnd:   sampleStart + (ct.durationMS*sg.SampleRate)/1000,
		}
		return cropped, nil
	}
}
