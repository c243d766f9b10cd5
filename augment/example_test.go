package augment_test

import (
	"fmt"
	"log"

	"github.com/RyanBlaney/sonido-augment/augment"
	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

func ExampleChain() {
	// A one-second mono spectrogram at 16 kHz with a 10 ms hop
	sg := spectrogram.New(1, 64, 100, 16000, 160)

	chain := augment.NewChain(
		augment.NewCropTime(500),
		augment.NewMaskFreq(),
		augment.NewDelta(),
	)

	out, err := chain.Apply(sg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d bins, %d frames\n", out.Channels(), out.FreqBins(), out.TimeFrames())
	// Output:
	// 3 channels, 64 bins, 51 frames
}

func ExampleTfmResize() {
	sg := spectrogram.New(2, 128, 300, 22050, 512)

	out, err := augment.NewTfmResize(64).Apply(sg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d bins, %d frames\n", out.Channels(), out.FreqBins(), out.TimeFrames())
	// Output:
	// 2 channels, 64 bins, 64 frames
}
