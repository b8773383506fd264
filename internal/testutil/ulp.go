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

// Package testutil holds float32 comparison helpers shared by the tests.
package testutil

import (
	"math"
	"testing"
)

// ULPDistance returns how many representable float32 values lie between a
// and b. +0 and -0 are zero apart, two NaNs are zero apart, and a NaN
// against a number is math.MaxUint32 apart.
func ULPDistance(a, b float32) uint32 {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || bNaN:
		return math.MaxUint32
	case a == b:
		return 0
	}
	ia, ib := orderedBits(a), orderedBits(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// orderedBits maps float32 bit patterns onto a line where adjacent floats
// are adjacent integers.
func orderedBits(f float32) int64 {
	bits := int64(math.Float32bits(f))
	if bits&(1<<31) != 0 {
		return -(bits &^ (1 << 31))
	}
	return bits
}

// RequireULP fails t if any lane of got differs from want by more than
// maxULP.
func RequireULP(t *testing.T, got, want [4]float32, maxULP uint32) {
	t.Helper()
	for i := range got {
		if d := ULPDistance(got[i], want[i]); d > maxULP {
			t.Fatalf("lane %d: got %v, want %v (%d ULP > %d)", i, got[i], want[i], d, maxULP)
		}
	}
}

// RandomLanes returns n pseudo-random finite float32 values in
// [-scale, scale), deterministic for a given seed.
func RandomLanes(seed uint64, n int, scale float32) []float32 {
	out := make([]float32, n)
	s := seed | 1
	for i := range out {
		// xorshift64*
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		r := s * 2685821657736338717
		u := float32(r>>40) / float32(1<<24)
		out[i] = (u*2 - 1) * scale
	}
	return out
}
