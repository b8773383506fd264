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

// Package simd provides 4-lane float32 vectors and structure-of-arrays
// geometry batches whose operations dispatch on an explicit instruction-set
// Path.
//
// The Path is detected once per process and then threaded through every
// call:
//
//	import "github.com/simdcull/simdcull/simd"
//
//	path := simd.CurrentPath()
//	a := simd.NewF32x4(1, 2, 3, 4)
//	b := simd.NewF32x4(5, 6, 7, 8)
//	sum := a.Add(b, path) // (6, 8, 10, 12) on every path
//
// PathScalar is the reference implementation and produces the same results
// as every accelerated path, up to rounding differences of the target
// instruction set. Any Path may be passed on any architecture: a path whose
// kernels are not compiled for the running GOARCH runs the scalar kernel.
//
// # Batches
//
// Vec3x4 stores four points as three F32x4 (all X, all Y, all Z) and AABBx4
// stores four boxes as a pair of Vec3x4. Point or box i always lives in
// lane i. PackAABBs and the Unpack helpers convert between object order and
// batch order.
//
// # Configuration
//
// Detection honors two environment variables, read once:
//
//   - SIMDCULL_NO_SIMD: any non-empty value forces PathScalar.
//   - SIMDCULL_PATH: requests a path by name (see ParsePath). Ignored, with a
//     warning on the package logger, if the hardware does not support it.
package simd
