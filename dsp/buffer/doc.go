// Package buffer provides the fixed-capacity float32 sample blocks used for
// per-quantum parameters and output.
//
// A Block is sized once for a render quantum and never reallocates. Its
// logical length is 0, 1 or the full capacity, which lets one type carry
// both constant-for-block (k-rate) and per-sample (a-rate) automation.
package buffer
