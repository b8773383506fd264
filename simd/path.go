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

import (
	"errors"
	"fmt"
	"strings"
)

// Path identifies the instruction-set strategy used by vector operations.
type Path uint8

const (
	// PathScalar is the portable reference implementation. Always available.
	PathScalar Path = iota

	// PathWasm128 is WebAssembly SIMD128.
	PathWasm128

	// PathNEON is ARM Advanced SIMD.
	PathNEON

	// PathSSE42 is x86-64 SSE4.2.
	PathSSE42

	// PathAVX2 is x86-64 AVX2.
	PathAVX2

	// PathAVX512 is x86-64 AVX-512 Foundation.
	PathAVX512
)

// ErrUnknownPath is returned by ParsePath for names that match no Path.
var ErrUnknownPath = errors.New("simd: unknown path")

// priority lists paths from most to least preferred.
var priority = [...]Path{PathAVX512, PathAVX2, PathSSE42, PathNEON, PathWasm128, PathScalar}

// Paths returns every Path in detection priority order.
func Paths() []Path {
	out := make([]Path, len(priority))
	copy(out, priority[:])
	return out
}

// String returns the display name of the path.
func (p Path) String() string {
	switch p {
	case PathAVX512:
		return "AVX-512"
	case PathAVX2:
		return "AVX2"
	case PathSSE42:
		return "SSE4.2"
	case PathNEON:
		return "NEON"
	case PathWasm128:
		return "WASM SIMD128"
	case PathScalar:
		return "Scalar (No SIMD)"
	default:
		return fmt.Sprintf("Path(%d)", uint8(p))
	}
}

// ExpectedSpeedup returns a rough speedup of the path over PathScalar for
// batch culling. The figures are a static table, not a measurement.
func (p Path) ExpectedSpeedup() float32 {
	switch p {
	case PathAVX512:
		return 2.0
	case PathAVX2:
		return 1.7
	case PathSSE42:
		return 1.5
	case PathNEON:
		return 1.6
	case PathWasm128:
		return 1.4
	default:
		return 1.0
	}
}

var pathAliases = map[string]Path{
	"avx512":  PathAVX512,
	"avx2":    PathAVX2,
	"sse42":   PathSSE42,
	"neon":    PathNEON,
	"asimd":   PathNEON,
	"wasm":    PathWasm128,
	"wasm128": PathWasm128,
	"simd128": PathWasm128,
	"scalar":  PathScalar,
	"none":    PathScalar,
	"generic": PathScalar,
}

func init() {
	for _, p := range priority {
		pathAliases[normalizePathName(p.String())] = p
	}
}

// normalizePathName lowercases s and drops separators so "AVX-512",
// "avx_512" and "avx512" compare equal.
func normalizePathName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '-', '_', '.', ' ', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParsePath parses a path name. Short names (avx512, avx2, sse42, neon,
// wasm128, scalar) and the display names returned by String are accepted,
// case-insensitively.
func ParsePath(s string) (Path, error) {
	if p, ok := pathAliases[normalizePathName(s)]; ok {
		return p, nil
	}
	return PathScalar, fmt.Errorf("%w: %q", ErrUnknownPath, s)
}
