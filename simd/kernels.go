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

import "github.com/simdcull/simdcull/simd/asm"

// kernel is the implementation family that executes a Path.
type kernel uint8

const (
	kernelScalar kernel = iota
	kernelUnrolled
	kernelSSE
	kernelNEON
)

// kernelFor maps a path to the kernels compiled into this binary. Paths
// whose kernels are not available on this GOARCH run the scalar kernels.
func kernelFor(p Path) kernel {
	switch p {
	case PathSSE42, PathAVX2, PathAVX512:
		if asm.SSEKernels {
			return kernelSSE
		}
	case PathNEON:
		if asm.NEONKernels {
			return kernelNEON
		}
	case PathWasm128:
		return kernelUnrolled
	}
	return kernelScalar
}

// The SSE and NEON wrappers hand the lanes to the assembly kernels by
// pointer; the kernels are noescape so nothing leaves the stack.

func addSSE(a, b F32x4) (r F32x4) {
	asm.AddF32x4SSE((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func subSSE(a, b F32x4) (r F32x4) {
	asm.SubF32x4SSE((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func mulSSE(a, b F32x4) (r F32x4) {
	asm.MulF32x4SSE((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func minSSE(a, b F32x4) (r F32x4) {
	asm.MinF32x4SSE((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func maxSSE(a, b F32x4) (r F32x4) {
	asm.MaxF32x4SSE((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func addNEON(a, b F32x4) (r F32x4) {
	asm.AddF32x4NEON((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func subNEON(a, b F32x4) (r F32x4) {
	asm.SubF32x4NEON((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func mulNEON(a, b F32x4) (r F32x4) {
	asm.MulF32x4NEON((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func minNEON(a, b F32x4) (r F32x4) {
	asm.MinF32x4NEON((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}

func maxNEON(a, b F32x4) (r F32x4) {
	asm.MaxF32x4NEON((*[4]float32)(&a), (*[4]float32)(&b), (*[4]float32)(&r))
	return r
}
