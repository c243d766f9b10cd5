package augment

import (
	"fmt"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// InterpMode selects the interpolation used by TfmResize
type InterpMode string

const (
	InterpBilinear InterpMode = "bilinear"
	InterpNearest  InterpMode = "nearest"
)

// TfmResize resizes the (frequency, time) extents of a spectrogram to a
// fixed target via 2D interpolation. Channel count is preserved; no aspect
// ratio preservation or padding.
type TfmResize struct {
	height int
	width  int
	mode   InterpMode
}

// TfmResizeParams contains parameters for TfmResize
type TfmResizeParams struct {
	Height int        `json:"height"` // Target frequency-bin count
	Width  int        `json:"width"`  // Target time-frame count
	Mode   InterpMode `json:"mode"`   // Interpolation mode (default: bilinear)
}

// NewTfmResize creates a TfmResize targeting a square size by size grid
func NewTfmResize(size int) *TfmResize {
	resize, _ := NewTfmResizeWithParams(TfmResizeParams{Height: size, Width: size})
	return resize
}

// NewTfmResizeWithParams creates a TfmResize with custom parameters
func NewTfmResizeWithParams(params TfmResizeParams) (*TfmResize, error) {
	if params.Mode == "" {
		params.Mode = InterpBilinear
	}
	if params.Mode != InterpBilinear && params.Mode != InterpNearest {
		return nil, fmt.Errorf("interpolation mode %q is not supported, only %q or %q",
			params.Mode, InterpBilinear, InterpNearest)
	}
	if params.Height <= 0 || params.Width <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", params.Height, params.Width)
	}
	return &TfmResize{
		height: params.Height,
		width:  params.Width,
		mode:   params.Mode,
	}, nil
}

// Name implements Transform
func (r *TfmResize) Name() string {
	return "tfm_resize"
}

// Apply interpolates every channel plane to the target (height, width)
func (r *TfmResize) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	if sg.FreqBins() == 0 || sg.TimeFrames() == 0 {
		return nil, fmt.Errorf("cannot resize empty spectrogram of shape %s", shapeString(sg))
	}

	out := spectrogram.New(sg.Channels(), r.height, r.width, sg.SampleRate, sg.HopLength)
	if sg.Provenance != nil {
		p := *sg.Provenance
		out.Provenance = &p
	}

	for c, channel := range sg.Data {
		r.resizePlane(channel, out.Data[c])
	}

	return out, nil
}

func (r *TfmResize) resizePlane(src, dst [][]float64) {
	srcH := len(src)
	srcW := len(src[0])
	scaleY := float64(srcH) / float64(r.height)
	scaleX := float64(srcW) / float64(r.width)

	for i := range r.height {
		for j := range r.width {
			if r.mode == InterpNearest {
				y := min(int(float64(i)*scaleY), srcH-1)
				x := min(int(float64(j)*scaleX), srcW-1)
				dst[i][j] = src[y][x]
				continue
			}

			// Bilinear with half-pixel centers (no corner alignment)
			srcY := clampCoord((float64(i)+0.5)*scaleY-0.5, srcH)
			srcX := clampCoord((float64(j)+0.5)*scaleX-0.5, srcW)

			y0 := int(srcY)
			x0 := int(srcX)
			y1 := min(y0+1, srcH-1)
			x1 := min(x0+1, srcW-1)
			fy := srcY - float64(y0)
			fx := srcX - float64(x0)

			top := src[y0][x0] + fx*(src[y0][x1]-src[y0][x0])
			bottom := src[y1][x0] + fx*(src[y1][x1]-src[y1][x0])
			dst[i][j] = top + fy*(bottom-top)
		}
	}
}

// clampCoord limits a source coordinate to [0, n-1]
func clampCoord(v float64, n int) float64 {
	if v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return float64(n - 1)
	}
	return v
}
