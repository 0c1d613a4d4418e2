// Command clockdiv renders a clock divider offline and reports the measured
// clock and output rates.
//
// Usage:
//
//	clockdiv render [flags]
//	clockdiv params
//
// Examples:
//
//	clockdiv render -o 3 -c 2
//	clockdiv render --clock-hz 16 --duration 4 --reset-at 1.5,3 --edges
//	clockdiv render --shape random --seed 7 -o 4
//	clockdiv params
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
