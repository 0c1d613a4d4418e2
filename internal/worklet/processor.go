package worklet

import (
	"fmt"

	"github.com/cwbudde/algo-clockdiv/dsp/clockdiv"
	"github.com/cwbudde/algo-clockdiv/dsp/core"
)

// Processor drives a ClockDivider from host automation and messages.
// It is not safe for concurrent use; HandleMessage and Process must be
// called from the audio thread or otherwise serialised.
type Processor struct {
	div  *clockdiv.ClockDivider
	port Port

	manualClock  bool
	manualReset  bool
	initialReset bool

	onClock clockdiv.EdgeFunc
	onReset clockdiv.EdgeFunc
}

// New creates a processor whose render quantum is the configured block
// size (128 by default). port may be nil to drop edge messages.
func New(port Port, opts ...core.ProcessorOption) (*Processor, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	div, err := clockdiv.New(cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("worklet: %w", err)
	}

	p := &Processor{
		div:          div,
		port:         port,
		initialReset: true,
	}
	p.onClock = p.edgeFunc(TypeClockTriggerChange)
	p.onReset = p.edgeFunc(TypeResetTriggerChange)

	return p, nil
}

// RenderQuantum returns the number of samples per Process call.
func (p *Processor) RenderQuantum() int { return p.div.RenderQuantum() }

// Divider returns the underlying divider.
func (p *Processor) Divider() *clockdiv.ClockDivider { return p.div }

// HandleMessage applies a message from the host.
func (p *Processor) HandleMessage(m Message) error {
	switch m.Type {
	case TypeManualClockTrigger:
		p.manualClock = m.Value
	case TypeManualResetTrigger:
		p.manualReset = m.Value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
	}
	return nil
}

// Process renders one quantum.
//
// params maps host parameter names to automation values of length 1 or
// RenderQuantum; a missing or empty entry uses the descriptor default and
// any other length uses its first value for the whole quantum. The output
// gate is copied into every channel of outputs. Process always returns
// true so the host keeps the node alive.
func (p *Processor) Process(params map[string][]float32, outputs [][]float32) bool {
	for _, d := range descriptors {
		p.load(d, params[d.Name])
	}

	if p.manualClock {
		_ = p.div.SetConstant(clockdiv.ParamClockGate, 1)
	}
	if p.manualReset || p.initialReset {
		_ = p.div.SetConstant(clockdiv.ParamResetGate, 1)
	}
	p.initialReset = false

	out := p.div.Process(p.onClock, p.onReset)
	for _, ch := range outputs {
		copy(ch, out)
	}

	return true
}

func (p *Processor) load(d Descriptor, values []float32) {
	switch {
	case len(values) == 0:
		_ = p.div.SetConstant(d.Param, d.Default)
	case p.div.SetParam(d.Param, values) != nil:
		_ = p.div.SetConstant(d.Param, values[0])
	}
}

func (p *Processor) edgeFunc(typ string) clockdiv.EdgeFunc {
	return func(active bool) {
		if p.port != nil {
			p.port.PostMessage(Message{Type: typ, Value: active})
		}
	}
}
