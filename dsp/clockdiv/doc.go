// Package clockdiv implements a gate clock divider.
//
// The divider watches a clock gate and a reset gate. Its output opens after
// a configured number of clock rising edges (ticks) and closes after a
// configured number of clock falling edges (tocks). A rising edge on the
// reset gate forces the output closed and loads both counters.
//
// Processing is block based: the host writes up to six parameter blocks with
// [ClockDivider.SetParam] and then calls [ClockDivider.Process] once per
// render quantum. Each parameter block holds either nothing (read as 0), a
// single constant or one value per sample.
//
// Counters are float32 and crossing a threshold subtracts it, so a
// fractional threshold carries its remainder into the next cycle.
package clockdiv
