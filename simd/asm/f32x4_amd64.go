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

//go:build amd64 && !noasm

package asm

// SSEKernels reports whether the SSE kernels are compiled in.
// SSE2 is part of the amd64 baseline, so no runtime check is needed.
const SSEKernels = true

// AddF32x4SSE computes dst = a + b with ADDPS.
//
//go:noescape
func AddF32x4SSE(a, b, dst *[4]float32)

// SubF32x4SSE computes dst = a - b with SUBPS.
//
//go:noescape
func SubF32x4SSE(a, b, dst *[4]float32)

// MulF32x4SSE computes dst = a * b with MULPS.
//
//go:noescape
func MulF32x4SSE(a, b, dst *[4]float32)

// MinF32x4SSE computes the lane-wise minimum with MINPS, then replaces lanes
// where b is NaN with a.
//
//go:noescape
func MinF32x4SSE(a, b, dst *[4]float32)

// MaxF32x4SSE computes the lane-wise maximum with MAXPS, then replaces lanes
// where b is NaN with a.
//
//go:noescape
func MaxF32x4SSE(a, b, dst *[4]float32)
