package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}

func ExampleSanitize32() {
	fmt.Println(core.Sanitize32(0, 0, 1, 1e9))
	fmt.Println(core.Sanitize32(4, 0, 1, 1e9))

	// Output:
	// 1
	// 4
}
