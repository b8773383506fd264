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

// F32x4 holds four independent float32 lanes. Lane i of NewF32x4(a0, a1,
// a2, a3) is ai. All arithmetic is lane-wise.
type F32x4 [4]float32

// NewF32x4 creates a vector from four lanes in order.
func NewF32x4(a0, a1, a2, a3 float32) F32x4 {
	return F32x4{a0, a1, a2, a3}
}

// Splat creates a vector with all lanes set to v.
func Splat(v float32) F32x4 {
	return F32x4{v, v, v, v}
}

// LoadF32x4 loads the first four elements of s.
// PRECONDITION: len(s) >= 4.
func LoadF32x4(s []float32) F32x4 {
	var v F32x4
	copy(v[:], s[:4])
	return v
}

// Store writes the four lanes to dst.
// PRECONDITION: len(dst) >= 4.
func (v F32x4) Store(dst []float32) {
	copy(dst[:4], v[:])
}

// Lane returns lane i.
func (v F32x4) Lane(i int) float32 {
	return v[i]
}

// Add returns v + o.
func (v F32x4) Add(o F32x4, p Path) F32x4 {
	switch kernelFor(p) {
	case kernelSSE:
		return addSSE(v, o)
	case kernelNEON:
		return addNEON(v, o)
	case kernelUnrolled:
		return addUnrolled(v, o)
	}
	return addScalar(v, o)
}

// Sub returns v - o.
func (v F32x4) Sub(o F32x4, p Path) F32x4 {
	switch kernelFor(p) {
	case kernelSSE:
		return subSSE(v, o)
	case kernelNEON:
		return subNEON(v, o)
	case kernelUnrolled:
		return subUnrolled(v, o)
	}
	return subScalar(v, o)
}

// Mul returns v * o.
func (v F32x4) Mul(o F32x4, p Path) F32x4 {
	switch kernelFor(p) {
	case kernelSSE:
		return mulSSE(v, o)
	case kernelNEON:
		return mulNEON(v, o)
	case kernelUnrolled:
		return mulUnrolled(v, o)
	}
	return mulScalar(v, o)
}

// Min returns the lane-wise minimum of v and o.
//
// Unlike math.Min, a NaN in exactly one operand does not propagate: the
// other operand's lane is returned, as with the NEON FMINNM instruction.
// When both lanes are NaN the result is NaN. For equal lanes (including
// +0 and -0) which operand is returned is unspecified.
func (v F32x4) Min(o F32x4, p Path) F32x4 {
	switch kernelFor(p) {
	case kernelSSE:
		return minSSE(v, o)
	case kernelNEON:
		return minNEON(v, o)
	case kernelUnrolled:
		return minUnrolled(v, o)
	}
	return minScalar(v, o)
}

// Max returns the lane-wise maximum of v and o, with the same NaN handling
// as Min.
func (v F32x4) Max(o F32x4, p Path) F32x4 {
	switch kernelFor(p) {
	case kernelSSE:
		return maxSSE(v, o)
	case kernelNEON:
		return maxNEON(v, o)
	case kernelUnrolled:
		return maxUnrolled(v, o)
	}
	return maxScalar(v, o)
}

// GreaterEqualMask returns a Mask with bit i set when v[i] >= o[i].
// Comparisons involving NaN are false.
func (v F32x4) GreaterEqualMask(o F32x4) Mask {
	var m Mask
	for i := range v {
		if v[i] >= o[i] {
			m |= 1 << i
		}
	}
	return m
}

// NonNegativeMask returns a Mask with bit i set when v[i] >= 0.
func (v F32x4) NonNegativeMask() Mask {
	return v.GreaterEqualMask(F32x4{})
}

// Mask is a 4-bit lane mask; bit i corresponds to lane i.
type Mask uint8

// MaskAll has every lane set.
const MaskAll Mask = 0b1111

// Lane reports whether lane i is set.
func (m Mask) Lane(i int) bool {
	return m&(1<<i) != 0
}

// AllTrue reports whether all four lanes are set.
func (m Mask) AllTrue() bool {
	return m&MaskAll == MaskAll
}

// AnyTrue reports whether at least one lane is set.
func (m Mask) AnyTrue() bool {
	return m&MaskAll != 0
}

// CountTrue returns the number of set lanes.
func (m Mask) CountTrue() int {
	n := 0
	for i := 0; i < 4; i++ {
		if m.Lane(i) {
			n++
		}
	}
	return n
}

// Bools expands the mask to one bool per lane.
func (m Mask) Bools() [4]bool {
	return [4]bool{m.Lane(0), m.Lane(1), m.Lane(2), m.Lane(3)}
}
