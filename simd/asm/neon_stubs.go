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

//go:build !arm64 || noasm

package asm

// Stub implementations for non-ARM64 or noasm builds.
// These are never called: the simd package checks NEONKernels first.

const NEONKernels = false

func AddF32x4NEON(a, b, dst *[4]float32) { panic("NEON not available") }
func SubF32x4NEON(a, b, dst *[4]float32) { panic("NEON not available") }
func MulF32x4NEON(a, b, dst *[4]float32) { panic("NEON not available") }
func MinF32x4NEON(a, b, dst *[4]float32) { panic("NEON not available") }
func MaxF32x4NEON(a, b, dst *[4]float32) { panic("NEON not available") }
