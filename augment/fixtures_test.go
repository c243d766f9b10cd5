package augment

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// makeSG builds a spectrogram where every cell holds a distinct value
// derived from its (channel, bin, frame) position, so tests can verify
// exactly which cells moved or changed.
func makeSG(channels, freqBins, timeFrames, sampleRate, hopLength int) *spectrogram.Spectrogram {
	sg := spectrogram.New(channels, freqBins, timeFrames, sampleRate, hopLength)
	for c := range sg.Data {
		for f := range sg.Data[c] {
			for t := range sg.Data[c][f] {
				sg.Data[c][f][t] = float64(c*1000000 + f*1000 + t)
			}
		}
	}
	return sg
}

func sameData(a, b *spectrogram.Spectrogram, tol float64) bool {
	if a.Channels() != b.Channels() || a.FreqBins() != b.FreqBins() || a.TimeFrames() != b.TimeFrames() {
		return false
	}
	for c := range a.Data {
		for f := range a.Data[c] {
			for t := range a.Data[c][f] {
				if !almostEqual(a.Data[c][f][t], b.Data[c][f][t], tol) {
					return false
				}
			}
		}
	}
	return true
}

// makeSTFTSpectrogram synthesizes a sine sweep and builds a magnitude
// spectrogram from windowed FFT frames. freqBins = windowSize/2 + 1.
func makeSTFTSpectrogram(windowSize, hopLength, timeFrames, sampleRate int) *spectrogram.Spectrogram {
	numSamples := windowSize + (timeFrames-1)*hopLength
	samples := make([]float64, numSamples)
	for i := range samples {
		// Sweep from 200 Hz to 2 kHz over the clip
		freq := 200.0 + 1800.0*float64(i)/float64(numSamples)
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}

	freqBins := windowSize/2 + 1
	sg := spectrogram.New(1, freqBins, timeFrames, sampleRate, hopLength)

	frame := make([]float64, windowSize)
	for t := range timeFrames {
		start := t * hopLength
		copy(frame, samples[start:start+windowSize])

		spectrum := fft.FFTReal(frame)
		for f := range freqBins {
			sg.Data[0][f][t] = cmplx.Abs(spectrum[f])
		}
	}

	return sg
}
