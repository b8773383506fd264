// Copyright 2026 simdcull Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build js && wasm

package platform

import (
	"sync"
	"syscall/js"
)

// simd128Probe is the smallest module whose only function uses v128:
//
//	(func (result v128) i32.const 0 i8x16.splat i8x16.popcnt)
//
// Hosts without SIMD128 reject it in WebAssembly.validate.
var simd128Probe = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7b, // type: () -> v128
	0x03, 0x02, 0x01, 0x00, // func section
	0x0a, 0x0a, 0x01, 0x08, 0x00, 0x41, 0x00, 0xfd, 0x0f, 0xfd, 0x62, 0x0b, // code
}

var simd128 = sync.OnceValue(func() (ok bool) {
	// js.Value calls panic with *js.Error on host exceptions.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	wasm := js.Global().Get("WebAssembly")
	if wasm.IsUndefined() || wasm.IsNull() {
		return false
	}
	buf := js.Global().Get("Uint8Array").New(len(simd128Probe))
	js.CopyBytesToJS(buf, simd128Probe)
	return wasm.Call("validate", buf).Bool()
})
