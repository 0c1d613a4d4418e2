// Package worklet adapts the clock divider to an AudioWorklet style host.
//
// The host calls Process once per render quantum with automation values
// keyed by parameter name and receives edge notifications as messages on a
// Port. Manual trigger messages let a user hold the clock or reset gate
// high from the UI, and the first quantum after construction always
// carries a reset so the counters start from their reset values.
package worklet
