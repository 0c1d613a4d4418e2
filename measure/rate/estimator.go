package rate

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Estimator finds the fundamental frequency of a gate train from its
// magnitude spectrum.
//
// The fundamental of a rectangular pulse train is never weaker than any of
// its harmonics, so the strongest non-DC bin is taken and refined by
// parabolic interpolation.
type Estimator struct {
	sampleRate float64
	minHz      float64
}

// NewEstimator creates an estimator for signals at sampleRate.
func NewEstimator(sampleRate float64) (*Estimator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("rate: sample rate must be positive and finite: %f", sampleRate)
	}
	return &Estimator{sampleRate: sampleRate}, nil
}

// SetMinFrequency ignores spectral peaks below hz.
func (e *Estimator) SetMinFrequency(hz float64) error {
	if hz < 0 || hz >= e.sampleRate/2 || math.IsNaN(hz) {
		return fmt.Errorf("rate: minimum frequency must be in [0, %g): %f", e.sampleRate/2, hz)
	}
	e.minHz = hz
	return nil
}

// SampleRate returns the configured sample rate.
func (e *Estimator) SampleRate() float64 { return e.sampleRate }

// FundamentalHz estimates the fundamental frequency of x in Hz.
func (e *Estimator) FundamentalHz(x []float32) (float64, error) {
	if len(x) < 4 {
		return 0, fmt.Errorf("rate: need at least 4 samples, got %d", len(x))
	}

	mag, fftSize, err := e.magnitude(x)
	if err != nil {
		return 0, err
	}

	binHz := e.sampleRate / float64(fftSize)
	lo := int(math.Ceil(e.minHz / binHz))
	if lo < 1 {
		lo = 1
	}
	hi := len(mag) - 2

	peak := -1
	best := 0.0
	for k := lo; k <= hi; k++ {
		if mag[k] > best {
			best = mag[k]
			peak = k
		}
	}
	if peak < 0 || best <= 1e-12 {
		return 0, fmt.Errorf("rate: no periodic component found")
	}

	return (float64(peak) + interpolatePeak(mag[peak-1], mag[peak], mag[peak+1])) * binHz, nil
}

// magnitude returns |X[k]| for k in [0, fftSize/2] of the mean-removed,
// Hann-windowed signal zero-padded to a power of two.
func (e *Estimator) magnitude(x []float32) ([]float64, int, error) {
	n := len(x)
	fftSize := nextPowerOf2(n)

	mean := 0.0
	for _, v := range x {
		mean += float64(v)
	}
	mean /= float64(n)

	samples := make([]float64, n)
	for i, v := range x {
		samples[i] = float64(v) - mean
	}
	vecmath.MulBlockInPlace(samples, hann(n))

	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("rate: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("rate: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, fftSize, nil
}

// interpolatePeak returns the fractional bin offset of the vertex of the
// parabola through three neighbouring magnitudes.
func interpolatePeak(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return 0
	}
	return 0.5 * (a - c) / den
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
