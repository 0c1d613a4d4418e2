// Package gate converts a continuous control signal into a four-stage gate
// lifecycle and reports each rising and falling edge exactly once.
//
// A sample is active when it is greater than zero. The Opening and Closing
// stages last exactly one sample and mark the sample on which an edge
// occurred, so downstream logic can react to the edge itself rather than
// to the held level.
package gate
