//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-clockdiv/dsp/core"
	"github.com/cwbudde/algo-clockdiv/internal/worklet"
)

var (
	processor *worklet.Processor
	funcs     []js.Func

	paramScratch  = map[string][]float32{}
	outputScratch [][]float32
)

func main() {
	api := js.Global().Get("Object").New()

	// init(renderQuantum, onMessage) creates the processor. onMessage
	// receives {type, value} objects for gate edges.
	api.Set("init", export(func(args []js.Value) any {
		quantum := core.DefaultRenderQuantum
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			quantum = args[0].Int()
		}
		var port worklet.Port
		if len(args) > 1 && args[1].Type() == js.TypeFunction {
			port = jsPort(args[1])
		}
		p, err := worklet.New(port, core.WithBlockSize(quantum))
		if err != nil {
			return err.Error()
		}
		processor = p
		return js.Null()
	}))

	api.Set("handleMessage", export(func(args []js.Value) any {
		if processor == nil || len(args) < 1 {
			return js.Null()
		}
		data := args[0]
		err := processor.HandleMessage(worklet.Message{
			Type:  data.Get("type").String(),
			Value: data.Get("value").Truthy(),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("parameterDescriptors", export(func(args []js.Value) any {
		ds := worklet.Descriptors()
		arr := js.Global().Get("Array").New(len(ds))
		for i, d := range ds {
			item := js.Global().Get("Object").New()
			item.Set("name", d.Name)
			item.Set("defaultValue", d.Default)
			item.Set("minValue", d.Min)
			item.Set("maxValue", d.Max)
			item.Set("automationRate", string(d.Rate))
			arr.SetIndex(i, item)
		}
		return arr
	}))

	// process(parameters) renders one quantum and returns a
	// Float32Array holding the output gate.
	api.Set("process", export(func(args []js.Value) any {
		if processor == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		params := args[0]
		for _, d := range worklet.Descriptors() {
			paramScratch[d.Name] = readFloat32s(params.Get(d.Name), paramScratch[d.Name])
		}

		n := processor.RenderQuantum()
		if outputScratch == nil {
			outputScratch = [][]float32{make([]float32, n)}
		}
		processor.Process(paramScratch, outputScratch)

		arr := js.Global().Get("Float32Array").New(n)
		for i, v := range outputScratch[0] {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	js.Global().Set("ClockDivider", api)
	select {}
}

func jsPort(fn js.Value) worklet.Port {
	return worklet.PortFunc(func(m worklet.Message) {
		msg := js.Global().Get("Object").New()
		msg.Set("type", m.Type)
		msg.Set("value", m.Value)
		fn.Invoke(msg)
	})
}

func readFloat32s(v js.Value, dst []float32) []float32 {
	if v.IsUndefined() || v.IsNull() {
		return dst[:0]
	}
	n := v.Length()
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = float32(v.Index(i).Float())
	}
	return dst
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
