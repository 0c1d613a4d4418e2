package rate

import "fmt"

// Report summarises a clock/divided gate pair.
type Report struct {
	ClockRising   int
	ClockFalling  int
	OutputRising  int
	OutputFalling int

	// ClockHz and OutputHz are rising edges per second.
	ClockHz  float64
	OutputHz float64

	// Ratio is ClockRising / OutputRising, or 0 when the output never rises.
	Ratio float64

	OutputDuty float64
}

// Analyze measures clock and divided gate rendered at sampleRate.
// Both signals must have the same length.
func Analyze(clock, divided []float32, sampleRate float64) (Report, error) {
	if len(clock) != len(divided) {
		return Report{}, fmt.Errorf("rate: length mismatch: %d vs %d", len(clock), len(divided))
	}

	clockHz, err := EdgeRate(clock, sampleRate)
	if err != nil {
		return Report{}, err
	}
	outputHz, err := EdgeRate(divided, sampleRate)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ClockHz:    clockHz,
		OutputHz:   outputHz,
		OutputDuty: DutyCycle(divided),
	}
	r.ClockRising, r.ClockFalling = CountEdges(clock)
	r.OutputRising, r.OutputFalling = CountEdges(divided)
	if r.OutputRising > 0 {
		r.Ratio = float64(r.ClockRising) / float64(r.OutputRising)
	}
	return r, nil
}
