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

//go:build arm64 && !noasm

package asm

// NEONKernels reports whether the NEON kernels are compiled in.
// Advanced SIMD is mandatory on ARMv8-A.
const NEONKernels = true

// AddF32x4NEON computes dst = a + b with FADD.4S.
//
//go:noescape
func AddF32x4NEON(a, b, dst *[4]float32)

// SubF32x4NEON computes dst = a - b with FSUB.4S.
//
//go:noescape
func SubF32x4NEON(a, b, dst *[4]float32)

// MulF32x4NEON computes dst = a * b with FMUL.4S.
//
//go:noescape
func MulF32x4NEON(a, b, dst *[4]float32)

// MinF32x4NEON computes the lane-wise minimum with FMINNM.4S.
//
//go:noescape
func MinF32x4NEON(a, b, dst *[4]float32)

// MaxF32x4NEON computes the lane-wise maximum with FMAXNM.4S.
//
//go:noescape
func MaxF32x4NEON(a, b, dst *[4]float32)
