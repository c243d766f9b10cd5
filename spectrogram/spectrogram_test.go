package spectrogram

import (
	"testing"
)

func makeTestSG(channels, freqBins, timeFrames int) *Spectrogram {
	sg := New(channels, freqBins, timeFrames, 16000, 160)
	for c := range sg.Data {
		for f := range sg.Data[c] {
			for t := range sg.Data[c][f] {
				sg.Data[c][f][t] = float64(c*1000 + f*10 + t)
			}
		}
	}
	return sg
}

func TestNewShape(t *testing.T) {
	sg := New(2, 64, 100, 16000, 160)
	if sg.Channels() != 2 || sg.FreqBins() != 64 || sg.TimeFrames() != 100 {
		t.Fatalf("got shape (%d, %d, %d)", sg.Channels(), sg.FreqBins(), sg.TimeFrames())
	}
	if err := sg.Validate(); err != nil {
		t.Fatalf("fresh spectrogram should validate: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	sg := makeTestSG(2, 4, 6)
	sg.Data[1] = sg.Data[1][:3]
	if err := sg.Validate(); err == nil {
		t.Fatal("expected error for ragged channel")
	}

	sg = makeTestSG(1, 4, 6)
	sg.Data[0][2] = sg.Data[0][2][:5]
	if err := sg.Validate(); err == nil {
		t.Fatal("expected error for ragged row")
	}

	sg = makeTestSG(1, 4, 6)
	sg.SampleRate = 0
	if err := sg.Validate(); err == nil {
		t.Fatal("expected error for zero sample rate")
	}

	sg = makeTestSG(1, 4, 6)
	sg.HopLength = -1
	if err := sg.Validate(); err == nil {
		t.Fatal("expected error for negative hop length")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	sg := makeTestSG(2, 4, 6)
	sg.Provenance = &Provenance{SampleStart: 160, SampleEnd: 8160}

	clone := sg.Clone()
	clone.Data[0][0][0] = -99
	clone.Provenance.SampleStart = 0

	if sg.Data[0][0][0] == -99 {
		t.Fatal("clone shares tensor data with the original")
	}
	if sg.Provenance.SampleStart != 160 {
		t.Fatal("clone shares provenance with the original")
	}
}

func TestSliceTime(t *testing.T) {
	sg := makeTestSG(1, 3, 10)

	out, err := sg.SliceTime(2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TimeFrames() != 5 {
		t.Fatalf("expected 5 frames, got %d", out.TimeFrames())
	}
	for f := range out.Data[0] {
		for i, v := range out.Data[0][f] {
			if v != sg.Data[0][f][i+2] {
				t.Fatalf("slice mismatch at bin %d frame %d", f, i)
			}
		}
	}

	for _, bad := range [][2]int{{-1, 5}, {0, 11}, {5, 5}, {7, 3}} {
		if _, err := sg.SliceTime(bad[0], bad[1]); err == nil {
			t.Fatalf("expected error for slice [%d, %d)", bad[0], bad[1])
		}
	}
}

func TestTransposeFreqTimeRoundTrip(t *testing.T) {
	sg := makeTestSG(2, 5, 9)

	transposed := sg.TransposeFreqTime()
	if transposed.FreqBins() != 9 || transposed.TimeFrames() != 5 {
		t.Fatalf("transpose shape (%d, %d)", transposed.FreqBins(), transposed.TimeFrames())
	}
	for c := range sg.Data {
		for f := range sg.Data[c] {
			for i, v := range sg.Data[c][f] {
				if transposed.Data[c][i][f] != v {
					t.Fatalf("transpose mismatch at (%d, %d, %d)", c, f, i)
				}
			}
		}
	}

	back := transposed.TransposeFreqTime()
	for c := range sg.Data {
		for f := range sg.Data[c] {
			for i, v := range sg.Data[c][f] {
				if back.Data[c][f][i] != v {
					t.Fatal("double transpose should reproduce the original")
				}
			}
		}
	}
}

func TestChannelMean(t *testing.T) {
	sg := New(2, 2, 2, 16000, 160)
	sg.Data[0] = [][]float64{{1, 2}, {3, 4}}
	sg.Data[1] = [][]float64{{10, 10}, {10, 10}}

	if got := sg.ChannelMean(0); got != 2.5 {
		t.Fatalf("channel 0 mean = %v, want 2.5", got)
	}
	if got := sg.ChannelMean(1); got != 10 {
		t.Fatalf("channel 1 mean = %v, want 10", got)
	}
	if got := sg.ChannelMean(5); got != 0 {
		t.Fatalf("out-of-range channel mean = %v, want 0", got)
	}
}
