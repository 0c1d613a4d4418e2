package clockdiv

import (
	"fmt"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
)

// ParamID identifies one of the six automatable parameters.
type ParamID int

const (
	// ParamClockGate is the clock input; a sample > 0 is high.
	ParamClockGate ParamID = iota
	// ParamResetGate is the reset input; a sample > 0 is high.
	ParamResetGate
	// ParamOpenAfterTicks is the number of clock rising edges to open.
	ParamOpenAfterTicks
	// ParamCloseAfterTocks is the number of clock falling edges to close.
	ParamCloseAfterTocks
	// ParamTicksOnReset is loaded into the tick counter on reset.
	ParamTicksOnReset
	// ParamTocksOnReset is loaded into the tock counter on reset.
	ParamTocksOnReset

	paramCount
)

const (
	// MaxMagnitude bounds every parameter value.
	MaxMagnitude = 1e9
	// MinThreshold is the smallest accepted open or close threshold.
	MinThreshold = 1
)

type paramRange struct {
	name     string
	min, max float32
}

var paramRanges = [paramCount]paramRange{
	ParamClockGate:       {"clock-gate", -MaxMagnitude, MaxMagnitude},
	ParamResetGate:       {"reset-gate", -MaxMagnitude, MaxMagnitude},
	ParamOpenAfterTicks:  {"open-after-ticks", MinThreshold, MaxMagnitude},
	ParamCloseAfterTocks: {"close-after-tocks", MinThreshold, MaxMagnitude},
	ParamTicksOnReset:    {"ticks-on-reset", -MaxMagnitude, MaxMagnitude},
	ParamTocksOnReset:    {"tocks-on-reset", -MaxMagnitude, MaxMagnitude},
}

// AllParams returns all parameter identifiers in declaration order.
func AllParams() []ParamID {
	ids := make([]ParamID, paramCount)
	for i := range ids {
		ids[i] = ParamID(i)
	}
	return ids
}

// Valid reports whether id names a known parameter.
func (id ParamID) Valid() bool {
	return id >= 0 && id < paramCount
}

// String returns the parameter name.
func (id ParamID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("param(%d)", int(id))
	}
	return paramRanges[id].name
}

// Range returns the inclusive range values of id are clamped to.
func (id ParamID) Range() (min, max float32) {
	if !id.Valid() {
		return 0, 0
	}
	r := paramRanges[id]
	return r.min, r.max
}

// ParseParam returns the parameter with the given name.
func ParseParam(name string) (ParamID, error) {
	for i, r := range paramRanges {
		if r.name == name {
			return ParamID(i), nil
		}
	}
	return 0, fmt.Errorf("clockdiv: unknown parameter %q", name)
}

// clampParam maps a raw parameter sample into its range. NaN reads as 0
// before clamping, so it becomes the lower bound for thresholds and 0
// everywhere else.
func clampParam(id ParamID, v float32) float32 {
	r := paramRanges[id]
	return core.Sanitize32(v, 0, r.min, r.max)
}
