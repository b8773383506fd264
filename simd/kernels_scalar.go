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

// This file provides the pure Go kernels. The *Scalar functions are the
// reference implementation every other path is tested against. The
// *Unrolled functions back PathWasm128: the Go wasm backend does not emit
// v128 instructions, so that path runs straight-line code with the same
// per-lane results.

func addScalar(a, b F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func subScalar(a, b F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func mulScalar(a, b F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

func minScalar(a, b F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = minLane(a[i], b[i])
	}
	return r
}

func maxScalar(a, b F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = maxLane(a[i], b[i])
	}
	return r
}

// minLane returns a when b is NaN, b when a is NaN, and the smaller value
// otherwise. Equal values return b, matching MINPS.
func minLane(a, b float32) float32 {
	switch {
	case b != b:
		return a
	case a < b:
		return a
	}
	return b
}

// maxLane mirrors minLane.
func maxLane(a, b float32) float32 {
	switch {
	case b != b:
		return a
	case a > b:
		return a
	}
	return b
}

func addUnrolled(a, b F32x4) F32x4 {
	return F32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subUnrolled(a, b F32x4) F32x4 {
	return F32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulUnrolled(a, b F32x4) F32x4 {
	return F32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func minUnrolled(a, b F32x4) F32x4 {
	return F32x4{minLane(a[0], b[0]), minLane(a[1], b[1]), minLane(a[2], b[2]), minLane(a[3], b[3])}
}

func maxUnrolled(a, b F32x4) F32x4 {
	return F32x4{maxLane(a[0], b[0]), maxLane(a[1], b[1]), maxLane(a[2], b[2]), maxLane(a[3], b[3])}
}
