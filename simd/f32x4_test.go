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
	"math"
	"testing"

	"github.com/simdcull/simdcull/internal/testutil"
)

// All paths are safe to call on any architecture, so equivalence is checked
// for every Path, not just the ones this machine accelerates.

func TestNewF32x4LaneOrder(t *testing.T) {
	v := NewF32x4(1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		if got := v.Lane(i); got != float32(i+1) {
			t.Errorf("Lane(%d) = %v, want %v", i, got, i+1)
		}
	}
}

func TestSplat(t *testing.T) {
	if got, want := Splat(5), (F32x4{5, 5, 5, 5}); got != want {
		t.Errorf("Splat(5) = %v, want %v", got, want)
	}
}

func TestLoadStore(t *testing.T) {
	src := []float32{9, 8, 7, 6, 5}
	v := LoadF32x4(src)
	if want := (F32x4{9, 8, 7, 6}); v != want {
		t.Errorf("LoadF32x4 = %v, want %v", v, want)
	}
	dst := make([]float32, 5)
	v.Store(dst)
	if dst[3] != 6 || dst[4] != 0 {
		t.Errorf("Store wrote %v", dst)
	}
}

func TestAddEveryPath(t *testing.T) {
	a := NewF32x4(1, 2, 3, 4)
	b := NewF32x4(5, 6, 7, 8)
	want := F32x4{6, 8, 10, 12}
	for _, p := range Paths() {
		if got := a.Add(b, p); got != want {
			t.Errorf("%v: Add = %v, want %v", p, got, want)
		}
	}
}

func TestArithmeticEveryPath(t *testing.T) {
	a := NewF32x4(2, 3, 4, 5)
	b := NewF32x4(2, 2, 2, 2)
	c := NewF32x4(1, 5, 3, 8)
	d := NewF32x4(2, 3, 4, 7)
	for _, p := range Paths() {
		if got, want := a.Mul(b, p), (F32x4{4, 6, 8, 10}); got != want {
			t.Errorf("%v: Mul = %v, want %v", p, got, want)
		}
		if got, want := a.Sub(b, p), (F32x4{0, 1, 2, 3}); got != want {
			t.Errorf("%v: Sub = %v, want %v", p, got, want)
		}
		if got, want := c.Min(d, p), (F32x4{1, 3, 3, 7}); got != want {
			t.Errorf("%v: Min = %v, want %v", p, got, want)
		}
		if got, want := c.Max(d, p), (F32x4{2, 5, 4, 8}); got != want {
			t.Errorf("%v: Max = %v, want %v", p, got, want)
		}
	}
}

func TestPathEquivalence(t *testing.T) {
	const rounds = 256
	xs := testutil.RandomLanes(1, 4*rounds, 1e4)
	ys := testutil.RandomLanes(2, 4*rounds, 1e4)

	ops := []struct {
		name string
		fn   func(a, b F32x4, p Path) F32x4
	}{
		{"Add", F32x4.Add},
		{"Sub", F32x4.Sub},
		{"Mul", F32x4.Mul},
		{"Min", F32x4.Min},
		{"Max", F32x4.Max},
	}

	for _, p := range Paths() {
		for _, op := range ops {
			t.Run(p.String()+"/"+op.name, func(t *testing.T) {
				for r := 0; r < rounds; r++ {
					a := LoadF32x4(xs[4*r:])
					b := LoadF32x4(ys[4*r:])
					testutil.RequireULP(t, op.fn(a, b, p), op.fn(a, b, PathScalar), 4)
				}
			})
		}
	}
}

func TestMinMaxNaNEveryPath(t *testing.T) {
	nan := float32(math.NaN())
	a := NewF32x4(nan, 1, nan, 2)
	b := NewF32x4(3, nan, nan, 5)
	for _, p := range Paths() {
		lo := a.Min(b, p)
		hi := a.Max(b, p)
		if lo[0] != 3 || lo[1] != 1 || lo[3] != 2 {
			t.Errorf("%v: Min = %v, want non-NaN operand in lanes 0 and 1", p, lo)
		}
		if hi[0] != 3 || hi[1] != 1 || hi[3] != 5 {
			t.Errorf("%v: Max = %v, want non-NaN operand in lanes 0 and 1", p, hi)
		}
		if !math.IsNaN(float64(lo[2])) || !math.IsNaN(float64(hi[2])) {
			t.Errorf("%v: both-NaN lane = (%v, %v), want NaN", p, lo[2], hi[2])
		}
	}
}

func TestArithmeticIEEE(t *testing.T) {
	inf := float32(math.Inf(1))
	a := NewF32x4(inf, -inf, 1, 0)
	b := NewF32x4(-inf, -inf, 0, 0)
	for _, p := range Paths() {
		sum := a.Add(b, p)
		if !math.IsNaN(float64(sum[0])) || !math.IsInf(float64(sum[1]), -1) || sum[2] != 1 || sum[3] != 0 {
			t.Errorf("%v: Add = %v", p, sum)
		}
	}
}

func TestMasks(t *testing.T) {
	v := NewF32x4(-1, 0, float32(math.Copysign(0, -1)), float32(math.NaN()))
	m := v.NonNegativeMask()
	if want := Mask(0b0110); m != want {
		t.Errorf("NonNegativeMask = %04b, want %04b", m, want)
	}
	if m.AllTrue() || !m.AnyTrue() || m.CountTrue() != 2 {
		t.Errorf("mask %04b: AllTrue %v AnyTrue %v CountTrue %d", m, m.AllTrue(), m.AnyTrue(), m.CountTrue())
	}
	if got, want := m.Bools(), [4]bool{false, true, true, false}; got != want {
		t.Errorf("Bools() = %v, want %v", got, want)
	}
	if !MaskAll.AllTrue() || Mask(0).AnyTrue() {
		t.Error("MaskAll/zero mask misreport")
	}
	ge := NewF32x4(1, 2, 3, 4).GreaterEqualMask(NewF32x4(2, 2, 2, 2))
	if ge != 0b1110 {
		t.Errorf("GreaterEqualMask = %04b, want 1110", ge)
	}
}

func BenchmarkF32x4Add(b *testing.B) {
	x := NewF32x4(1, 2, 3, 4)
	y := NewF32x4(5, 6, 7, 8)
	for _, p := range Detect().SupportedPaths() {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			acc := x
			for n := 0; n < b.N; n++ {
				acc = acc.Add(y, p)
			}
			_ = acc
		})
	}
}
