package gate

// Detector tracks the stage of one gate input and forwards edges to an
// optional callback.
//
// The zero value is not ready for use; create detectors with NewDetector.
// A Detector is not safe for concurrent use.
type Detector struct {
	stage Stage
}

// NewDetector returns a detector in the Closed stage.
func NewDetector() *Detector {
	return &Detector{stage: Closed}
}

// Stage returns the stage reached by the last update.
func (d *Detector) Stage() Stage {
	return d.stage
}

// Update advances the detector by one sample. When the sample produces an
// edge, onChange is called exactly once with true for a rising edge and false
// for a falling edge, before Update returns. onChange may be nil.
func (d *Detector) Update(v float32, onChange func(active bool)) Stage {
	next, edge := Next(d.stage, v)
	d.stage = next

	if edge != EdgeNone && onChange != nil {
		onChange(edge == EdgeRising)
	}

	return next
}

// Reset returns the detector to Closed without raising a notification.
func (d *Detector) Reset() {
	d.stage = Closed
}
