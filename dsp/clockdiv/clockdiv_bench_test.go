package clockdiv

import (
	"testing"

	"github.com/cwbudde/algo-clockdiv/internal/testutil"
)

func BenchmarkProcess128Constant(b *testing.B) {
	d, _ := New(128)
	_ = d.SetParam(ParamClockGate, testutil.PulseTrain(16, 8, 128))
	_ = d.SetConstant(ParamOpenAfterTicks, 3)
	_ = d.SetConstant(ParamCloseAfterTocks, 2)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d.Process(nil, nil)
	}
}

func BenchmarkProcess128AudioRate(b *testing.B) {
	d, _ := New(128)
	_ = d.SetParam(ParamClockGate, testutil.PulseTrain(16, 8, 128))
	_ = d.SetParam(ParamResetGate, testutil.Triggers(128, 100))
	_ = d.SetParam(ParamOpenAfterTicks, testutil.DC(3, 128))
	_ = d.SetParam(ParamCloseAfterTocks, testutil.DC(2, 128))
	_ = d.SetParam(ParamTicksOnReset, testutil.DC(0, 128))
	_ = d.SetParam(ParamTocksOnReset, testutil.DC(0, 128))

	edges := 0
	onEdge := func(bool) { edges++ }

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d.Process(onEdge, onEdge)
	}
}
