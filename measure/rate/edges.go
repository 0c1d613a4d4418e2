package rate

import "fmt"

// CountEdges returns the number of rising and falling edges in x. A sample
// is high when it is greater than zero and the signal is assumed to start
// low, so a high first sample counts as a rising edge.
func CountEdges(x []float32) (rising, falling int) {
	high := false
	for _, v := range x {
		now := v > 0
		switch {
		case now && !high:
			rising++
		case !now && high:
			falling++
		}
		high = now
	}
	return rising, falling
}

// DutyCycle returns the fraction of samples in x that are high.
func DutyCycle(x []float32) float64 {
	if len(x) == 0 {
		return 0
	}
	n := 0
	for _, v := range x {
		if v > 0 {
			n++
		}
	}
	return float64(n) / float64(len(x))
}

// EdgeRate returns the number of rising edges per second.
func EdgeRate(x []float32, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("rate: sample rate must be > 0: %f", sampleRate)
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("rate: signal must not be empty")
	}
	rising, _ := CountEdges(x)
	return float64(rising) * sampleRate / float64(len(x)), nil
}

// DivisionRatio returns the number of clock rising edges per rising edge
// of the divided gate.
func DivisionRatio(clock, divided []float32) (float64, error) {
	in, _ := CountEdges(clock)
	out, _ := CountEdges(divided)
	if out == 0 {
		return 0, fmt.Errorf("rate: divided gate has no rising edge")
	}
	return float64(in) / float64(out), nil
}
