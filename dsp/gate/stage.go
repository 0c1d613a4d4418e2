package gate

// Stage is the lifecycle position of a gate signal.
type Stage int

const (
	// Opening marks the first active sample after an inactive one.
	Opening Stage = iota + 1
	// Open is an active sample following an active one.
	Open
	// Closing marks the first inactive sample after an active one.
	Closing
	// Closed is an inactive sample following an inactive one.
	Closed
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Active reports whether the stage belongs to the active half of the
// lifecycle (Opening or Open).
func (s Stage) Active() bool {
	return s == Opening || s == Open
}

// Edge is the notification produced by a transition.
type Edge int

const (
	// EdgeNone means the sample did not change the gate level.
	EdgeNone Edge = iota
	// EdgeRising is raised on entry to Opening.
	EdgeRising
	// EdgeFalling is raised on entry to Closing.
	EdgeFalling
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	default:
		return "none"
	}
}

// transitions[stage][high] is the next stage and the edge it raises.
var transitions = [...][2]struct {
	next Stage
	edge Edge
}{
	Opening: {{Closing, EdgeFalling}, {Open, EdgeNone}},
	Open:    {{Closing, EdgeFalling}, {Open, EdgeNone}},
	Closing: {{Closed, EdgeNone}, {Opening, EdgeRising}},
	Closed:  {{Closed, EdgeNone}, {Opening, EdgeRising}},
}

// Next returns the stage that follows s for sample value v, together with
// the edge raised by the transition. Values greater than zero are active;
// everything else, including NaN, is inactive.
//
// A stage outside the four defined values is treated as Closed.
func Next(s Stage, v float32) (Stage, Edge) {
	if s < Opening || s > Closed {
		s = Closed
	}

	high := 0
	if v > 0 {
		high = 1
	}

	t := transitions[s][high]
	return t.next, t.edge
}
