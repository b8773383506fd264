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

// Package asm holds the hand-written 4-lane float32 kernels behind the
// accelerated simd paths.
//
// Every kernel reads two [4]float32 operands and writes one [4]float32
// result. The SSE kernels (amd64) back the SSE4.2, AVX2 and AVX-512 paths:
// four lanes fill exactly one XMM register, so wider registers have nothing
// to add. The NEON kernels (arm64) back the NEON path.
//
// Callers must check SSEKernels / NEONKernels before calling; on other
// architectures (or with the noasm build tag) the kernels are stubs that
// panic.
//
// Min and Max return the other operand when exactly one lane operand is NaN
// (NEON FMINNM/FMAXNM semantics; the SSE kernels patch MINPS/MAXPS to match).
package asm
