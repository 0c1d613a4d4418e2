// Package testutil holds signal fixtures and assertions shared by tests.
package testutil

import "math/rand"

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PulseTrain generates a gate that is high for the first high samples of
// every period, starting at sample 0.
func PulseTrain(period, high, length int) []float32 {
	out := make([]float32, length)
	if period <= 0 {
		return out
	}
	for i := range out {
		if i%period < high {
			out[i] = 1
		}
	}
	return out
}

// Triggers generates a silent signal with single-sample pulses at the given
// positions. Out-of-range positions are ignored.
func Triggers(length int, positions ...int) []float32 {
	out := make([]float32, length)
	for _, p := range positions {
		if p >= 0 && p < length {
			out[p] = 1
		}
	}
	return out
}

// RandomGate generates a gate where each sample is high with probability p.
func RandomGate(seed int64, p float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		if rng.Float64() < p {
			out[i] = 1
		}
	}
	return out
}
