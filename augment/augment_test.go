package augment

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-augment/logging"
)

func TestChainAppliesInOrder(t *testing.T) {
	sg := makeSG(1, 64, 100, 16000, 160)

	crop := NewCropTimeWithParams(CropTimeParams{
		DurationMS: 500,
		Rand:       rand.New(rand.NewPCG(81, 82)),
	})
	chain := NewChain(crop, NewDelta()).WithLogger(&logging.NoOpLogger{})

	out, err := chain.Apply(sg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Channels() != 3 || out.FreqBins() != 64 || out.TimeFrames() != 51 {
		t.Fatalf("expected shape (3, 64, 51), got %s", shapeString(out))
	}
	if out.Provenance == nil {
		t.Fatal("provenance from the crop should survive the delta stage")
	}
}

func TestChainWrapsFailingTransform(t *testing.T) {
	// 5 frames is narrower than the default delta window
	sg := makeSG(1, 8, 5, 16000, 160)
	chain := NewChain(NewDelta()).WithLogger(&logging.NoOpLogger{})

	_, err := chain.Apply(sg)
	if err == nil {
		t.Fatal("expected chain to surface the transform error")
	}
	if !strings.HasPrefix(err.Error(), "delta:") {
		t.Fatalf("error should be wrapped with the transform name, got %q", err.Error())
	}
}

func TestChainStopsAtFirstFailure(t *testing.T) {
	sg := makeSG(1, 8, 20, 16000, 160)
	orig := sg.Clone()

	badMask := NewMaskFreqWithParams(MaskFreqParams{Size: 4, Start: intPtr(50)})
	zeroMask := NewMaskFreqWithParams(MaskFreqParams{Size: 4, Start: intPtr(0), Value: floatPtr(0)})
	chain := NewChain(badMask, zeroMask).WithLogger(&logging.NoOpLogger{})

	if _, err := chain.Apply(sg); err == nil {
		t.Fatal("expected the first transform to fail")
	}
	if !sameData(sg, orig, 0) {
		t.Fatal("later transforms must not run after a failure")
	}
}

func TestEmptyChainPassesThrough(t *testing.T) {
	sg := makeSG(1, 4, 4, 16000, 160)
	out, err := NewChain().Apply(sg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != sg {
		t.Fatal("empty chain should return the input untouched")
	}
}
