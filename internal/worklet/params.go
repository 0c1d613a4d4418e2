package worklet

import "github.com/cwbudde/algo-clockdiv/dsp/clockdiv"

// AutomationRate tells the host how often a parameter may change.
type AutomationRate string

const (
	// ARate parameters carry one value per sample.
	ARate AutomationRate = "a-rate"
	// KRate parameters carry one value per render quantum.
	KRate AutomationRate = "k-rate"
)

// Descriptor describes one host-visible parameter.
type Descriptor struct {
	Name    string
	Param   clockdiv.ParamID
	Default float32
	Min     float32
	Max     float32
	Rate    AutomationRate
}

// Host parameter names.
const (
	ParamClockTrigger      = "clockTrigger"
	ParamResetTrigger      = "resetTrigger"
	ParamAttackAfterTicks  = "attackAfterTicks"
	ParamReleaseAfterTocks = "releaseAfterTocks"
	ParamTicksOnReset      = "ticksOnReset"
	ParamTocksOnReset      = "tocksOnReset"
)

var descriptors = []Descriptor{
	{Name: ParamClockTrigger, Param: clockdiv.ParamClockGate, Default: 0, Min: -clockdiv.MaxMagnitude, Max: clockdiv.MaxMagnitude, Rate: ARate},
	{Name: ParamResetTrigger, Param: clockdiv.ParamResetGate, Default: 0, Min: -clockdiv.MaxMagnitude, Max: clockdiv.MaxMagnitude, Rate: ARate},
	{Name: ParamAttackAfterTicks, Param: clockdiv.ParamOpenAfterTicks, Default: 1, Min: clockdiv.MinThreshold, Max: clockdiv.MaxMagnitude, Rate: ARate},
	{Name: ParamReleaseAfterTocks, Param: clockdiv.ParamCloseAfterTocks, Default: 1, Min: clockdiv.MinThreshold, Max: clockdiv.MaxMagnitude, Rate: ARate},
	{Name: ParamTicksOnReset, Param: clockdiv.ParamTicksOnReset, Default: 0, Min: -clockdiv.MaxMagnitude, Max: clockdiv.MaxMagnitude, Rate: ARate},
	{Name: ParamTocksOnReset, Param: clockdiv.ParamTocksOnReset, Default: 0, Min: -clockdiv.MaxMagnitude, Max: clockdiv.MaxMagnitude, Rate: ARate},
}

// Descriptors returns the parameter descriptors in registration order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor with the given host name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
