package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/sonido-augment/spectrogram"
)

// Roll directions
const (
	RollLeft          = -1
	RollBidirectional = 0
	RollRight         = 1
)

// SGRoll circularly shifts a spectrogram along the time axis, wrapping
// content around to the other side, to simulate time-offset variation
type SGRoll struct {
	maxShiftPct float64
	direction   int
	rng         *rand.Rand
}

// SGRollParams contains parameters for SGRoll
type SGRollParams struct {
	MaxShiftPct float64    `json:"max_shift_pct"` // Maximum shift as a fraction of total width (default: 0.5)
	Direction   int        `json:"direction"`     // -1 left, 0 bidirectional, 1 right (default: 0)
	Rand        *rand.Rand `json:"-"`             // Optional random source for deterministic runs
}

// NewSGRoll creates a bidirectional SGRoll with a 0.5 maximum shift fraction
func NewSGRoll() *SGRoll {
	roll, _ := NewSGRollWithParams(SGRollParams{MaxShiftPct: 0.5})
	return roll
}

// NewSGRollWithParams creates an SGRoll with custom parameters
func NewSGRollWithParams(params SGRollParams) (*SGRoll, error) {
	if params.Direction < RollLeft || params.Direction > RollRight {
		return nil, fmt.Errorf("direction must be -1 (left), 0 (bidirectional) or 1 (right), got %d",
			params.Direction)
	}
	return &SGRoll{
		maxShiftPct: params.MaxShiftPct,
		direction:   params.Direction,
		rng:         params.Rand,
	}, nil
}

// Name implements Transform
func (r *SGRoll) Name() string {
	return "sg_roll"
}

// Apply shifts sg in place by a random signed amount up to
// maxShiftPct * width frames. Shape is unchanged.
func (r *SGRoll) Apply(sg *spectrogram.Spectrogram) (*spectrogram.Spectrogram, error) {
	direction := r.direction
	if direction == RollBidirectional {
		if randIntN(r.rng, 2) == 0 {
			direction = RollLeft
		} else {
			direction = RollRight
		}
	}

	w := sg.TimeFrames()
	rollBy := int(float64(w) * randFloat64(r.rng) * r.maxShiftPct * float64(direction))
	if w == 0 || rollBy%w == 0 {
		return sg, nil
	}

	for _, channel := range sg.Data {
		for f, row := range channel {
			channel[f] = rollRow(row, rollBy)
		}
	}

	return sg, nil
}

// rollRow circularly shifts a row by n positions; positive n moves content
// toward higher indices
func rollRow(row []float64, n int) []float64 {
	w := len(row)
	k := ((n % w) + w) % w
	if k == 0 {
		return row
	}

	rolled := make([]float64, w)
	for i, v := range row {
		rolled[(i+k)%w] = v
	}
	return rolled
}
