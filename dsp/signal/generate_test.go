package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
)

func TestPulseTrain(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	x, err := g.PulseTrain(250, 0.5, 12)
	if err != nil {
		t.Fatalf("PulseTrain() error = %v", err)
	}

	want := []float32{1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestPulseTrainRisingEdges(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	x, err := g.PulseTrain(100, 0.25, 48000)
	if err != nil {
		t.Fatalf("PulseTrain() error = %v", err)
	}

	rising := 0
	prev := float32(0)
	for _, v := range x {
		if v > 0 && prev <= 0 {
			rising++
		}
		prev = v
	}
	if rising != 100 {
		t.Fatalf("rising edges = %d, want 100", rising)
	}
}

func TestPulseTrainInvalid(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	tests := []struct {
		name    string
		freq    float64
		duty    float64
		samples int
	}{
		{"zero samples", 10, 0.5, 0},
		{"zero freq", 0, 0.5, 10},
		{"above nyquist", 600, 0.5, 10},
		{"inf freq", math.Inf(1), 0.5, 10},
		{"zero duty", 10, 0, 10},
		{"full duty", 10, 1, 10},
		{"nan duty", 10, math.NaN(), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.PulseTrain(tt.freq, tt.duty, tt.samples); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	x, err := g.Sine(250, 1, 4)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if x[0] != 0 || x[1] != 1 {
		t.Fatalf("unexpected start %v", x[:2])
	}
	if x[3] > -0.99 {
		t.Fatalf("x[3] = %v, want -1", x[3])
	}
}

func TestTriggers(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(10))
	x, err := g.Triggers([]float64{0.2, 0.9}, 2, 10)
	if err != nil {
		t.Fatalf("Triggers() error = %v", err)
	}

	want := []float32{0, 0, 1, 1, 0, 0, 0, 0, 0, 1}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	if _, err := g.Triggers([]float64{-1}, 1, 10); err == nil {
		t.Fatal("expected error for negative time")
	}
	if _, err := g.Triggers(nil, 0, 10); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRandomGateDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	a, err := g1.RandomGate(0.3, 64)
	if err != nil {
		t.Fatalf("RandomGate() error = %v", err)
	}
	b, err := g2.RandomGate(0.3, 64)
	if err != nil {
		t.Fatalf("RandomGate() error = %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("gate mismatch at %d: %v != %v", i, a[i], b[i])
		}
		if a[i] != 0 && a[i] != 1 {
			t.Fatalf("a[%d] = %v, want 0 or 1", i, a[i])
		}
	}

	if _, err := g1.RandomGate(1.5, 8); err == nil {
		t.Fatal("expected error for probability > 1")
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}
	if g.Config().BlockSize != core.DefaultRenderQuantum {
		t.Fatalf("BlockSize=%d, want %d", g.Config().BlockSize, core.DefaultRenderQuantum)
	}
}
