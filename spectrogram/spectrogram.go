// Package spectrogram defines the time-frequency tensor type shared by all
// augmentation transforms: a stack of channel planes, each plane indexed by
// frequency bin (rows) and time frame (columns).
package spectrogram

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Spectrogram holds a 3-dimensional time-frequency tensor with the audio
// parameters needed to convert between frame indices and sample positions.
type Spectrogram struct {
	// Data is indexed [channel][freqBin][timeFrame]
	Data [][][]float64

	SampleRate int // Hz
	HopLength  int // samples advanced between consecutive time frames

	// Provenance records where a cropped spectrogram came from in the
	// source audio. It is set by the crop branch of CropTime and nil
	// everywhere else. Advisory only; no transform reads it.
	Provenance *Provenance
}

// Provenance is the sample range of the source audio a spectrogram covers
type Provenance struct {
	SampleStart int `json:"sample_start"`
	SampleEnd   int `json:"sample_end"`
}

// New allocates a zero-filled spectrogram with the given extents
func New(channels, freqBins, timeFrames, sampleRate, hopLength int) *Spectrogram {
	data := make([][][]float64, channels)
	for c := range data {
		data[c] = make([][]float64, freqBins)
		for f := range data[c] {
			data[c][f] = make([]float64, timeFrames)
		}
	}
	return &Spectrogram{
		Data:       data,
		SampleRate: sampleRate,
		HopLength:  hopLength,
	}
}

// Channels returns the number of channel planes
func (sg *Spectrogram) Channels() int {
	return len(sg.Data)
}

// FreqBins returns the number of frequency bins
func (sg *Spectrogram) FreqBins() int {
	if len(sg.Data) == 0 {
		return 0
	}
	return len(sg.Data[0])
}

// TimeFrames returns the number of time frames
func (sg *Spectrogram) TimeFrames() int {
	if len(sg.Data) == 0 || len(sg.Data[0]) == 0 {
		return 0
	}
	return len(sg.Data[0][0])
}

// Validate checks that the tensor is rectangular and the audio parameters
// are usable for frame/sample conversion
func (sg *Spectrogram) Validate() error {
	if sg.Channels() == 0 {
		return fmt.Errorf("spectrogram has no channels")
	}
	if sg.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", sg.SampleRate)
	}
	if sg.HopLength <= 0 {
		return fmt.Errorf("invalid hop length: %d", sg.HopLength)
	}

	freqBins := len(sg.Data[0])
	for c, channel := range sg.Data {
		if len(channel) != freqBins {
			return fmt.Errorf("channel %d has %d frequency bins, expected %d", c, len(channel), freqBins)
		}
		for f, row := range channel {
			if len(row) != sg.TimeFrames() {
				return fmt.Errorf("channel %d bin %d has %d frames, expected %d", c, f, len(row), sg.TimeFrames())
			}
		}
	}

	return nil
}

// Clone returns a deep copy sharing no data with the receiver
func (sg *Spectrogram) Clone() *Spectrogram {
	out := &Spectrogram{
		Data:       make([][][]float64, len(sg.Data)),
		SampleRate: sg.SampleRate,
		HopLength:  sg.HopLength,
	}
	for c, channel := range sg.Data {
		out.Data[c] = make([][]float64, len(channel))
		for f, row := range channel {
			out.Data[c][f] = make([]float64, len(row))
			copy(out.Data[c][f], row)
		}
	}
	if sg.Provenance != nil {
		p := *sg.Provenance
		out.Provenance = &p
	}
	return out
}

// SliceTime returns a copy restricted to time frames [start, end)
func (sg *Spectrogram) SliceTime(start, end int) (*Spectrogram, error) {
	if start < 0 || end > sg.TimeFrames() || start >= end {
		return nil, fmt.Errorf("invalid time slice [%d, %d) for %d frames", start, end, sg.TimeFrames())
	}

	out := New(sg.Channels(), sg.FreqBins(), end-start, sg.SampleRate, sg.HopLength)
	for c, channel := range sg.Data {
		for f, row := range channel {
			copy(out.Data[c][f], row[start:end])
		}
	}
	return out, nil
}

// TransposeFreqTime returns a copy with the frequency and time axes swapped.
// The result has FreqBins() == sg.TimeFrames() and vice versa.
func (sg *Spectrogram) TransposeFreqTime() *Spectrogram {
	out := New(sg.Channels(), sg.TimeFrames(), sg.FreqBins(), sg.SampleRate, sg.HopLength)
	for c, channel := range sg.Data {
		for f, row := range channel {
			for t, v := range row {
				out.Data[c][t][f] = v
			}
		}
	}
	if sg.Provenance != nil {
		p := *sg.Provenance
		out.Provenance = &p
	}
	return out
}

// ChannelMean computes the mean over all frequency/time positions of one channel
func (sg *Spectrogram) ChannelMean(channel int) float64 {
	if channel < 0 || channel >= sg.Channels() {
		return 0.0
	}

	flat := make([]float64, 0, sg.FreqBins()*sg.TimeFrames())
	for _, row := range sg.Data[channel] {
		flat = append(flat, row...)
	}
	if len(flat) == 0 {
		return 0.0
	}
	return stat.Mean(flat, nil)
}
