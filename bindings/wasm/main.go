//go:build js && wasm

// Command wasm exposes decode, encode, trim, and the streaming builder to
// JavaScript as globalThis.pngtext. Byte buffers cross the boundary as Uint8Array; failed
// calls resolve to {error, kind} objects instead of throwing.
package main

import (
	"syscall/js"

	"github.com/joshuapare/pngtext/bindings"
)

func main() {
	js.Global().Set("pngtext", js.ValueOf(map[string]any{
		"decode": js.FuncOf(decode),
		"encode": js.FuncOf(encode),
		"trim":   js.FuncOf(trim),
		"base":   js.FuncOf(base),
	}))
	select {}
}

func decode(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return usage("decode(data, keyword)")
	}
	return toJS(bindings.Decode(bytesFromJS(args[0]), args[1].String()))
}

func encode(_ js.Value, args []js.Value) any {
	if len(args) != 3 {
		return usage("encode(data, keyword, value)")
	}
	return toJS(bindings.Encode(bytesFromJS(args[0]), args[1].String(), args[2].String()))
}

func trim(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return usage("trim(data)")
	}
	return toJS(bindings.Trim(bytesFromJS(args[0])))
}

// base(data, keyword, size) resolves to {data, stream}; stream has
// append(bytes), remaining(), and finalize(), each returning a result object
// whose data the caller writes after the prefix.
func base(_ js.Value, args []js.Value) any {
	if len(args) != 3 {
		return usage("base(data, keyword, size)")
	}
	s, res := bindings.Base(bytesFromJS(args[0]), args[1].String(), args[2].Int())
	if !res.OK() {
		return toJS(res)
	}
	stream := map[string]any{
		"append": js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) != 1 {
				return usage("append(bytes)")
			}
			return toJS(s.Append(bytesFromJS(args[0])))
		}),
		"remaining": js.FuncOf(func(js.Value, []js.Value) any {
			return s.Remaining()
		}),
		"finalize": js.FuncOf(func(js.Value, []js.Value) any {
			return toJS(s.Finalize())
		}),
	}
	out := toJS(res).(map[string]any)
	out["stream"] = stream
	return out
}

func bytesFromJS(v js.Value) []byte {
	b := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(b, v)
	return b
}

func toJS(r bindings.Result) any {
	if !r.OK() {
		return map[string]any{"error": r.Error, "kind": r.Kind}
	}
	if r.Data != nil {
		arr := js.Global().Get("Uint8Array").New(len(r.Data))
		js.CopyBytesToJS(arr, r.Data)
		return map[string]any{"data": arr}
	}
	return map[string]any{"text": r.Text}
}

func usage(sig string) any {
	return map[string]any{"error": "usage: " + sig, "kind": "Usage"}
}
