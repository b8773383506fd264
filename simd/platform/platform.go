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

// Package platform answers host questions that CPUID-style detection cannot,
// most importantly whether a WebAssembly host accepts SIMD128 code.
//
// The simd package consults HasSIMD128 only when GOARCH is wasm; on every
// other target it returns false without doing any work.
package platform

import "runtime"

// Name returns a short name for the host platform: "linux", "windows",
// "macos", "wasm" or "unknown".
func Name() string {
	return nameFor(runtime.GOOS, runtime.GOARCH)
}

func nameFor(goos, goarch string) string {
	if goarch == "wasm" {
		return "wasm"
	}
	switch goos {
	case "linux", "windows":
		return goos
	case "darwin":
		return "macos"
	default:
		return "unknown"
	}
}

// HasSIMD128 reports whether the host can run WebAssembly SIMD128 code.
// The answer is computed once and cached.
func HasSIMD128() bool {
	return simd128()
}
