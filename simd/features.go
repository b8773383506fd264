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

package simd

// Features describes the SIMD capabilities of the host that matter for
// path selection. Flags for other architectures are always false.
type Features struct {
	// x86-64
	HasAVX512 bool // AVX-512 Foundation with OS register support
	HasAVX2   bool
	HasSSE42  bool

	// ARM64
	HasNEON bool // Advanced SIMD (mandatory on ARMv8-A)

	// WebAssembly
	HasSIMD128 bool

	Architecture string // runtime.GOARCH
	Platform     string // platform.Name()
}

// Supports reports whether f allows p. PathScalar is always supported.
func (f Features) Supports(p Path) bool {
	switch p {
	case PathScalar:
		return true
	case PathWasm128:
		return f.HasSIMD128
	case PathNEON:
		return f.HasNEON
	case PathSSE42:
		return f.HasSSE42
	case PathAVX2:
		return f.HasAVX2
	case PathAVX512:
		return f.HasAVX512
	default:
		return false
	}
}

// SelectPath returns the most preferred path that f supports, in the order
// AVX-512, AVX2, SSE4.2, NEON, WASM SIMD128, Scalar.
func SelectPath(f Features) Path {
	for _, p := range priority {
		if f.Supports(p) {
			return p
		}
	}
	return PathScalar
}

// SupportedPaths returns the paths f supports in priority order. The last
// element is always PathScalar.
func (f Features) SupportedPaths() []Path {
	var out []Path
	for _, p := range priority {
		if f.Supports(p) {
			out = append(out, p)
		}
	}
	return out
}
