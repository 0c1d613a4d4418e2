package clockdiv

import (
	"fmt"

	"github.com/cwbudde/algo-clockdiv/dsp/buffer"
	"github.com/cwbudde/algo-clockdiv/dsp/gate"
)

// EdgeFunc receives gate edge notifications: true for a rising edge and
// false for a falling edge. It is called synchronously from Process and
// must not call back into the divider.
type EdgeFunc func(active bool)

// ClockDivider runs the divider over fixed-size blocks of samples.
//
// All buffers are allocated by New; SetParam and Process never allocate.
// A ClockDivider is not safe for concurrent use: parameter writes and
// Process calls must not interleave.
type ClockDivider struct {
	quantum int

	params [paramCount]*buffer.Block
	output *buffer.Block

	clock *gate.Detector
	reset *gate.Detector
	state State
}

// New creates a divider that processes renderQuantum samples per call.
// Both gates start closed, the counters at zero and the output silent.
func New(renderQuantum int) (*ClockDivider, error) {
	if renderQuantum <= 0 {
		return nil, fmt.Errorf("clockdiv: render quantum must be positive: %d", renderQuantum)
	}

	d := &ClockDivider{
		quantum: renderQuantum,
		output:  buffer.New(renderQuantum),
		clock:   gate.NewDetector(),
		reset:   gate.NewDetector(),
	}
	for i := range d.params {
		d.params[i] = buffer.NewEmpty(renderQuantum)
	}

	return d, nil
}

// RenderQuantum returns the number of samples processed per call.
func (d *ClockDivider) RenderQuantum() int { return d.quantum }

// State returns the divider state after the last processed sample.
func (d *ClockDivider) State() State { return d.state }

// ClockStage returns the clock gate stage after the last processed sample.
func (d *ClockDivider) ClockStage() gate.Stage { return d.clock.Stage() }

// ResetStage returns the reset gate stage after the last processed sample.
func (d *ClockDivider) ResetStage() gate.Stage { return d.reset.Stage() }

// SetParam copies values into the block for id.
//
// values may be empty (the parameter reads 0), hold one constant or hold
// exactly RenderQuantum samples. Any other length is rejected and the block
// keeps its previous contents.
func (d *ClockDivider) SetParam(id ParamID, values []float32) error {
	if !id.Valid() {
		return fmt.Errorf("clockdiv: unknown parameter %d", int(id))
	}
	if err := d.params[id].Write(values); err != nil {
		return fmt.Errorf("clockdiv: %s: %w", id, err)
	}
	return nil
}

// SetConstant sets id to a single value for the whole block.
func (d *ClockDivider) SetConstant(id ParamID, v float32) error {
	if !id.Valid() {
		return fmt.Errorf("clockdiv: unknown parameter %d", int(id))
	}
	d.params[id].SetConstant(v)
	return nil
}

// Param returns the current contents of the block for id, or nil for an
// unknown id. The slice aliases internal storage.
func (d *ClockDivider) Param(id ParamID) []float32 {
	if !id.Valid() {
		return nil
	}
	return d.params[id].Samples()
}

// Process runs one render quantum and returns the output gate samples.
//
// onClock and onReset receive the edges of the clock and reset gates and
// may be nil. The returned slice aliases the output block and is
// overwritten by the next call.
func (d *ClockDivider) Process(onClock, onReset EdgeFunc) []float32 {
	out := d.output.Samples()

	for i := range out {
		clock := d.clock.Update(d.param(ParamClockGate, i), onClock)
		reset := d.reset.Update(d.param(ParamResetGate, i), onReset)

		d.state = Divide(d.state, Params{
			OpenAfterTicks:  d.param(ParamOpenAfterTicks, i),
			CloseAfterTocks: d.param(ParamCloseAfterTocks, i),
			TicksOnReset:    d.param(ParamTicksOnReset, i),
			TocksOnReset:    d.param(ParamTocksOnReset, i),
		}, clock, reset)

		out[i] = d.state.Output
	}

	return out
}

// Reset returns the gates, counters and output to their initial state.
// Parameter blocks are kept.
func (d *ClockDivider) Reset() {
	d.clock.Reset()
	d.reset.Reset()
	d.state = State{}
	d.output.Zero()
}

func (d *ClockDivider) param(id ParamID, index int) float32 {
	return clampParam(id, d.params[id].Value(index))
}
