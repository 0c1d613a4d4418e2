package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
	"github.com/cwbudde/algo-clockdiv/dsp/signal"
	"github.com/cwbudde/algo-clockdiv/internal/worklet"
	"github.com/cwbudde/algo-clockdiv/measure/rate"
)

type renderOptions struct {
	sampleRate   float64
	quantum      int
	duration     float64
	shape        string
	clockHz      float64
	duty         float64
	seed         int64
	open         float32
	close        float32
	ticksOnReset float32
	tocksOnReset float32
	resetAt      []float64
	edges        bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Divide a generated clock and report rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.sampleRate, "sample-rate", 48000, "sample rate in Hz")
	f.IntVar(&opts.quantum, "quantum", core.DefaultRenderQuantum, "render quantum in samples")
	f.Float64Var(&opts.duration, "duration", 2, "render length in seconds")
	f.StringVar(&opts.shape, "shape", "pulse", "clock shape: pulse, sine or random")
	f.Float64Var(&opts.clockHz, "clock-hz", 8, "clock frequency in Hz (pulse, sine)")
	f.Float64Var(&opts.duty, "duty", 0.5, "clock duty cycle (pulse) or high probability (random)")
	f.Int64Var(&opts.seed, "seed", 1, "random seed (random)")
	f.Float32VarP(&opts.open, "open", "o", 1, "clock rising edges to open the output")
	f.Float32VarP(&opts.close, "close", "c", 1, "clock falling edges to close the output")
	f.Float32Var(&opts.ticksOnReset, "ticks-on-reset", 0, "tick count loaded on reset")
	f.Float32Var(&opts.tocksOnReset, "tocks-on-reset", 0, "tock count loaded on reset")
	f.Float64SliceVar(&opts.resetAt, "reset-at", nil, "reset trigger times in seconds")
	f.BoolVar(&opts.edges, "edges", false, "print every output gate edge")

	return cmd
}

type result struct {
	sampleRate    float64
	clock, output []float32
	clockEdges    int
	resetEdges    int
}

func render(opts renderOptions) (result, error) {
	if opts.duration <= 0 || math.IsNaN(opts.duration) {
		return result{}, fmt.Errorf("duration must be > 0: %f", opts.duration)
	}

	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(opts.sampleRate),
		core.WithBlockSize(opts.quantum),
	}
	gen := signal.NewGeneratorWithOptions(coreOpts, signal.WithSeed(opts.seed))
	cfg := gen.Config()

	quanta := int(math.Ceil(opts.duration * cfg.SampleRate / float64(cfg.BlockSize)))
	samples := quanta * cfg.BlockSize

	var (
		clock []float32
		err   error
	)
	switch opts.shape {
	case "pulse":
		clock, err = gen.PulseTrain(opts.clockHz, opts.duty, samples)
	case "sine":
		clock, err = gen.Sine(opts.clockHz, 1, samples)
	case "random":
		clock, err = gen.RandomGate(opts.duty, samples)
	default:
		err = fmt.Errorf("unknown clock shape %q", opts.shape)
	}
	if err != nil {
		return result{}, err
	}

	reset, err := gen.Triggers(opts.resetAt, 1, samples)
	if err != nil {
		return result{}, err
	}

	res := result{sampleRate: cfg.SampleRate, clock: clock, output: make([]float32, samples)}
	port := worklet.PortFunc(func(m worklet.Message) {
		switch m.Type {
		case worklet.TypeClockTriggerChange:
			res.clockEdges++
		case worklet.TypeResetTriggerChange:
			res.resetEdges++
		}
	})

	p, err := worklet.New(port, coreOpts...)
	if err != nil {
		return result{}, err
	}

	params := map[string][]float32{
		worklet.ParamAttackAfterTicks:  {opts.open},
		worklet.ParamReleaseAfterTocks: {opts.close},
		worklet.ParamTicksOnReset:      {opts.ticksOnReset},
		worklet.ParamTocksOnReset:      {opts.tocksOnReset},
	}
	outputs := [][]float32{nil}
	for q := 0; q < quanta; q++ {
		start, end := q*cfg.BlockSize, (q+1)*cfg.BlockSize
		params[worklet.ParamClockTrigger] = clock[start:end]
		params[worklet.ParamResetTrigger] = reset[start:end]
		outputs[0] = res.output[start:end]
		p.Process(params, outputs)
	}

	return res, nil
}

func runRender(w io.Writer, opts renderOptions) error {
	res, err := render(opts)
	if err != nil {
		return err
	}

	report, err := rate.Analyze(res.clock, res.output, res.sampleRate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "samples\t%d\n", len(res.output))
	fmt.Fprintf(tw, "clock edges\t%d rising, %d falling (%d notified)\n",
		report.ClockRising, report.ClockFalling, res.clockEdges)
	fmt.Fprintf(tw, "reset notifications\t%d\n", res.resetEdges)
	fmt.Fprintf(tw, "output edges\t%d rising, %d falling\n", report.OutputRising, report.OutputFalling)
	fmt.Fprintf(tw, "clock rate\t%.3f Hz\n", report.ClockHz)
	fmt.Fprintf(tw, "output rate\t%.3f Hz\n", report.OutputHz)
	fmt.Fprintf(tw, "output duty\t%.3f\n", report.OutputDuty)
	if report.Ratio > 0 {
		fmt.Fprintf(tw, "ratio\t%.3f\n", report.Ratio)
	} else {
		fmt.Fprintf(tw, "ratio\t-\n")
	}

	if est, err := rate.NewEstimator(res.sampleRate); err == nil {
		if hz, err := est.FundamentalHz(res.output); err == nil {
			fmt.Fprintf(tw, "output fundamental\t%.3f Hz\n", hz)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if opts.edges {
		return writeEdges(w, res.output, res.sampleRate)
	}
	return nil
}

func writeEdges(w io.Writer, out []float32, sampleRate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nSAMPLE\tTIME\tEDGE")

	high := false
	for i, v := range out {
		now := v > 0
		if now == high {
			continue
		}
		high = now
		edge := "falling"
		if now {
			edge = "rising"
		}
		fmt.Fprintf(tw, "%d\t%.4fs\t%s\n", i, float64(i)/sampleRate, edge)
	}
	return tw.Flush()
}
