package testutil

import (
	"math"
	"testing"
)

// RequireGate fails t unless every element is exactly 0 or 1.
func RequireGate(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		if v != 0 && v != 1 {
			t.Fatalf("index %d: gate value %v, want 0 or 1", i, v)
		}
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// Chunk splits x into consecutive blocks of size n. A trailing partial block
// is dropped.
func Chunk(x []float32, n int) [][]float32 {
	if n <= 0 {
		return nil
	}
	blocks := make([][]float32, 0, len(x)/n)
	for start := 0; start+n <= len(x); start += n {
		blocks = append(blocks, x[start:start+n])
	}
	return blocks
}
