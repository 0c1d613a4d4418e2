// Package signal generates deterministic gate and control signals for
// driving clock-divider inputs in tests, demos and offline renders.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for random gates.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the random seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the random seed used by later calls.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// PulseTrain generates a 0/1 gate at freqHz whose high part covers the
// fraction duty of each period. The first period starts high at sample 0.
func (g *Generator) PulseTrain(freqHz, duty float64, samples int) ([]float32, error) {
	if err := g.check("pulse", samples); err != nil {
		return nil, err
	}
	if freqHz <= 0 || freqHz > g.cfg.SampleRate/2 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("pulse frequency must be in (0, %g]: %f", g.cfg.SampleRate/2, freqHz)
	}
	if duty <= 0 || duty >= 1 || math.IsNaN(duty) {
		return nil, fmt.Errorf("pulse duty must be in (0, 1): %f", duty)
	}

	out := make([]float32, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		_, phase := math.Modf(step * float64(i))
		if phase < duty {
			out[i] = 1
		}
	}
	return out, nil
}

// Sine generates a sine wave. As a gate it is high for the positive half
// of each cycle.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// Triggers generates a silent signal with a pulse of widthSamples at each
// time in atSeconds. Pulses past the end are truncated.
func (g *Generator) Triggers(atSeconds []float64, widthSamples, samples int) ([]float32, error) {
	if err := g.check("trigger", samples); err != nil {
		return nil, err
	}
	if widthSamples <= 0 {
		return nil, fmt.Errorf("trigger width must be > 0: %d", widthSamples)
	}

	out := make([]float32, samples)
	for _, at := range atSeconds {
		if at < 0 || !core.IsFinite(at) {
			return nil, fmt.Errorf("trigger time must be finite and >= 0: %f", at)
		}
		start := int(math.Round(at * g.cfg.SampleRate))
		for i := start; i < start+widthSamples && i < samples; i++ {
			out[i] = 1
		}
	}
	return out, nil
}

// RandomGate generates a gate whose samples are independently high with the
// given probability.
func (g *Generator) RandomGate(probability float64, samples int) ([]float32, error) {
	if err := g.check("random gate", samples); err != nil {
		return nil, err
	}
	if probability < 0 || probability > 1 || math.IsNaN(probability) {
		return nil, fmt.Errorf("random gate probability must be in [0, 1]: %f", probability)
	}
	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		if rng.Float64() < probability {
			out[i] = 1
		}
	}
	return out, nil
}

func (g *Generator) check(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, g.cfg.SampleRate)
	}
	return nil
}
