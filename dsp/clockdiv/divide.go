package clockdiv

import "github.com/cwbudde/algo-clockdiv/dsp/gate"

// State is the divider state carried from one sample to the next.
type State struct {
	// Output is the output gate, always 0 or 1.
	Output float32
	// Ticks counts clock rising edges seen while the output is closed.
	Ticks float32
	// Tocks counts clock falling edges seen while the output is open.
	Tocks float32
}

// Params are the divider settings that apply to one sample.
type Params struct {
	OpenAfterTicks  float32
	CloseAfterTocks float32
	TicksOnReset    float32
	TocksOnReset    float32
}

// Divide advances the divider by one sample.
//
// A reset edge is applied first and overrides the output and both counters.
// A clock rising edge then counts a tick if the output is closed, and a
// clock falling edge counts a tock if the output is open. Ticks and tocks
// never accumulate at the same time.
func Divide(s State, p Params, clock, reset gate.Stage) State {
	if reset == gate.Opening {
		s.Output = 0
		s.Ticks = p.TicksOnReset
		s.Tocks = p.TocksOnReset
	}

	if clock == gate.Opening && s.Output <= 0 {
		s.Ticks++
		if s.Ticks >= p.OpenAfterTicks {
			s.Output = 1
			s.Ticks -= p.OpenAfterTicks
		}
	}

	if clock == gate.Closing && s.Output > 0 {
		s.Tocks++
		if s.Tocks >= p.CloseAfterTocks {
			s.Output = 0
			s.Tocks -= p.CloseAfterTocks
		}
	}

	return s
}
