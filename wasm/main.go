//go:build js && wasm

// Command wasm exposes the filter engine to the capture page. Build it,
// together with wasm_exec.js, by running go generate in the module root.
package main

import (
	"syscall/js"

	"github.com/rm-hull/camfilter/internal/camera"
	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/preview"
)

// apply(data: Uint8ClampedArray, width, height, filterName, mirrored) -> error string | null
func apply(_ js.Value, args []js.Value) any {
	if len(args) != 5 {
		return "apply expects (data, width, height, filter, mirrored)"
	}
	data := args[0]
	pix := make([]uint8, data.Get("length").Int())
	js.CopyBytesToGo(pix, data)

	if err := camera.ProcessPixels(pix, args[1].Int(), args[2].Int(), args[3].String(), args[4].Bool()); err != nil {
		return err.Error()
	}

	js.CopyBytesToJS(data, pix)
	return nil
}

func previewCSS(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return ""
	}
	kind, err := filter.Parse(args[0].String())
	if err != nil {
		return ""
	}
	return preview.CSS(kind)
}

func main() {
	js.Global().Set("camfilter", js.ValueOf(map[string]any{
		"apply":      js.FuncOf(apply),
		"previewCSS": js.FuncOf(previewCSS),
	}))
	select {}
}
