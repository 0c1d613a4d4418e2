package gate

import (
	"os"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

type edgeLog struct {
	events []bool
}

func (l *edgeLog) record(active bool) {
	l.events = append(l.events, active)
}

func TestDetectorStartsClosed(t *testing.T) {
	require.Equal(t, Closed, NewDetector().Stage())
}

func TestDetectorPulse(t *testing.T) {
	d := NewDetector()
	log := &edgeLog{}

	input := []float32{0, 1, 1, 1, 0, 0, 1, 0}
	want := []Stage{Closed, Opening, Open, Open, Closing, Closed, Opening, Closing}

	for i, v := range input {
		got := d.Update(v, log.record)
		require.Equalf(t, want[i], got, "sample %d", i)
	}

	require.Equal(t, []bool{true, false, true, false}, log.events)
}

func TestDetectorHeldLevelIsQuiet(t *testing.T) {
	d := NewDetector()
	log := &edgeLog{}

	d.Update(1, log.record)
	for i := 0; i < 1000; i++ {
		d.Update(0.5, log.record)
	}
	require.Equal(t, []bool{true}, log.events)
	require.Equal(t, Open, d.Stage())
}

func TestDetectorNilCallback(t *testing.T) {
	d := NewDetector()
	require.NotPanics(t, func() {
		d.Update(1, nil)
		d.Update(0, nil)
	})
	require.Equal(t, Closing, d.Stage())
}

func TestDetectorResetIsSilent(t *testing.T) {
	d := NewDetector()
	log := &edgeLog{}

	d.Update(1, log.record)
	d.Reset()
	require.Equal(t, Closed, d.Stage())
	require.Len(t, log.events, 1)

	d.Update(1, log.record)
	require.Equal(t, []bool{true, true}, log.events)
}

func TestDetectorEdgeCountProperty(t *testing.T) {
	var (
		parameters = gopter.DefaultTestParameters()
		seed       = time.Now().UnixNano()
		props      = gopter.NewProperties(parameters)
		reporter   = gopter.NewFormatedReporter(true, 160, os.Stdout)
	)
	parameters.MinSuccessfulTests = 256
	parameters.Rng.Seed(seed)

	props.Property("one notification per level change", prop.ForAll(
		func(levels []bool) bool {
			d := NewDetector()
			log := &edgeLog{}

			wantEdges := 0
			prev := false
			for _, high := range levels {
				if high != prev {
					wantEdges++
				}
				prev = high

				v := float32(0)
				if high {
					v = 1
				}
				stage := d.Update(v, log.record)
				if stage.Active() != high {
					return false
				}
			}

			if len(log.events) != wantEdges {
				return false
			}
			for i, active := range log.events {
				// Notifications must alternate, starting with a rising edge.
				if active != (i%2 == 0) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	if !props.Run(reporter) {
		t.Errorf("failed with initial seed: %d", seed)
	}
}

func BenchmarkDetectorUpdate128(b *testing.B) {
	d := NewDetector()
	buf := make([]float32, 128)
	for i := range buf {
		if i%16 < 8 {
			buf[i] = 1
		}
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range buf {
			d.Update(v, nil)
		}
	}
}
