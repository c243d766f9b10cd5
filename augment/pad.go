package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// PadMode selects how padToWidth fills the extra time frames
type PadMode string

const (
	// PadZeros places the original content at a random offset inside a
	// zero-filled tensor of the target width
	PadZeros PadMode = "zeros"

	// PadZerosAfter left-aligns the original content and appends zeros
	PadZerosAfter PadMode = "zeros_after"

	// PadRepeat tiles the original content along time and truncates to
	// the target width
	PadRepeat PadMode = "repeat"
)

// padToWidth grows a spectrogram to exactly width time frames. Channel and
// frequency extents are unchanged. width must be >= the current frame count.
func padToWidth(sg *spectrogram.Spectrogram, width int, mode PadMode, rng *rand.Rand) (*spectrogram.Spectrogram, error) {
	x := sg.TimeFrames()

	switch mode {
	case PadZeros, PadZerosAfter:
		padded := spectrogram.New(sg.Channels(), sg.FreqBins(), width, sg.SampleRate, sg.HopLength)
		start := 0
		if mode == PadZeros {
			start = randIntN(rng, width-x+1)
		}
		for c, channel := range sg.Data {
			for f, row := range channel {
				copy(padded.Data[c][f][start:start+x], row)
			}
		}
		return padded, nil

	case PadRepeat:
		tiled := spectrogram.New(sg.Channels(), sg.FreqBins(), width, sg.SampleRate, sg.HopLength)
		for c, channel := range sg.Data {
			for f, row := range channel {
				for t := range width {
					tiled.Data[c][f][t] = row[t%x]
				}
			}
		}
		return tiled, nil

	default:
		return nil, fmt.Errorf("pad mode %q is not supported, only %q, %q, or %q",
			mode, PadZeros, PadZerosAfter, PadRepeat)
	}
}
