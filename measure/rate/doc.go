// Package rate measures the rate of gate signals and the division ratio
// between a clock and a divided gate.
//
// Edge counting gives exact ratios for rendered signals; the FFT based
// [Estimator] gives the fundamental frequency of a gate train even when only
// a few periods are available or the duty cycle drifts.
package rate
