package worklet

import "errors"

// Message types exchanged with the host.
const (
	// TypeManualClockTrigger holds the clock gate high while Value is true.
	TypeManualClockTrigger = "manual-clock-trigger"
	// TypeManualResetTrigger holds the reset gate high while Value is true.
	TypeManualResetTrigger = "manual-reset-trigger"
	// TypeClockTriggerChange reports a clock gate edge.
	TypeClockTriggerChange = "clock-trigger-change"
	// TypeResetTriggerChange reports a reset gate edge.
	TypeResetTriggerChange = "reset-trigger-change"
)

// Message is a typed boolean message on the host port.
type Message struct {
	Type  string
	Value bool
}

// Port delivers messages to the host.
type Port interface {
	PostMessage(m Message)
}

// PortFunc adapts a function to Port.
type PortFunc func(m Message)

// PostMessage calls f(m).
func (f PortFunc) PostMessage(m Message) { f(m) }

// ErrUnknownMessage is wrapped by HandleMessage for unsupported types.
var ErrUnknownMessage = errors.New("worklet: unknown message type")
