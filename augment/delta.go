package augment

import (
	"fmt"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// Delta augments each channel with its first- and second-order temporal
// derivative planes, tripling the channel count. Channel ordering is
// preserved: channel 0's (original, order-1, order-2) triplet precedes
// channel 1's.
type Delta struct {
	width int
}

// DeltaParams contains parameters for Delta
type DeltaParams struct {
	Width int `json:"width"` // Regression window in frames, odd and >= 3 (default: 9)
}

// NewDelta creates a Delta with the default window width of 9 frames
func NewDelta() *Delta {
	delta, _ := NewDeltaWithParams(DeltaParams{})
	return delta
}

// NewDeltaWithParams creates a Delta with custom parameters
func NewDeltaWithParams(params DeltaParams) (*Delta, error) {
	if params.Width == 0 {
		params.Width = 9
	}
	if params.Width < 3 || params.Width%2 == 0 {
		return nil, fmt.Errorf("delta width must be an odd integer >= 3, got %d", params.Width)
	}
	return &Delta{width: params.Width}, nil
}

// Name implements Transform
func (d *Delta) Name() string {
	return "delta"
}

// Apply computes the stacked delta features. The input must have at least
// width time frames.
func (d *Delta) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	frames := sg.TimeFrames()
	if frames < d.width {
		return nil, fmt.Errorf("delta needs inputs at least %d frames wide, got %d; pad the input to a larger minimum width first",
			d.width, frames)
	}

	out := spectrogram.New(3*sg.Channels(), sg.FreqBins(), frames, sg.SampleRate, sg.HopLength)
	if sg.Provenance != nil {
		p := *sg.Provenance
		out.Provenance = &p
	}

	halfWidth := (d.width - 1) / 2
	for c, channel := range sg.Data {
		order1 := deltaPlane(channel, halfWidth)
		order2 := deltaPlane(order1, halfWidth)

		for f, row := range channel {
			copy(out.Data[3*c][f], row)
			copy(out.Data[3*c+1][f], order1[f])
			copy(out.Data[3*c+2][f], order2[f])
		}
	}

	return out, nil
}

// deltaPlane computes regression-window derivatives along the time axis for
// every frequency row:
//
//	d[t] = sum_{n=1}^{N} n*(v[t+n] - v[t-n]) / (2 * sum_{n=1}^{N} n^2)
//
// Indices past either edge are clamped to the boundary frame.
func deltaPlane(plane [][]float64, halfWidth int) [][]float64 {
	denom := 0.0
	for n := 1; n <= halfWidth; n++ {
		denom += float64(n * n)
	}
	denom *= 2.0

	out := make([][]float64, len(plane))
	for f, row := range plane {
		frames := len(row)
		out[f] = make([]float64, frames)

		for t := range row {
			num := 0.0
			for n := 1; n <= halfWidth; n++ {
				tp := min(t+n, frames-1)
				tn := max(t-n, 0)
				num += float64(n) * (row[tp] - row[tn])
			}
			out[f][t] = num / denom
		}
	}

	return out
}
