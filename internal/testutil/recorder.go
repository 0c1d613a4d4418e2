package testutil

// EdgeRecorder captures gate edge notifications.
type EdgeRecorder struct {
	Events []bool
}

// Record appends one notification. It matches the edge callback signature.
func (r *EdgeRecorder) Record(active bool) {
	r.Events = append(r.Events, active)
}

// Rising returns the number of recorded rising edges.
func (r *EdgeRecorder) Rising() int {
	n := 0
	for _, e := range r.Events {
		if e {
			n++
		}
	}
	return n
}

// Falling returns the number of recorded falling edges.
func (r *EdgeRecorder) Falling() int {
	return len(r.Events) - r.Rising()
}
