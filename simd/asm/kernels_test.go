package asm

import (
	"math"
	"testing"
)

type kernel func(a, b, dst *[4]float32)

type kernelSet struct {
	add, sub, mul, min, max kernel
}

func checkArithmetic(t *testing.T, name string, k kernelSet) {
	t.Helper()
	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{5, 6, 7, 8}

	var dst [4]float32
	k.add(&a, &b, &dst)
	if want := [4]float32{6, 8, 10, 12}; dst != want {
		t.Errorf("%s add: got %v, want %v", name, dst, want)
	}
	k.sub(&a, &b, &dst)
	if want := [4]float32{-4, -4, -4, -4}; dst != want {
		t.Errorf("%s sub: got %v, want %v", name, dst, want)
	}
	k.mul(&a, &b, &dst)
	if want := [4]float32{5, 12, 21, 32}; dst != want {
		t.Errorf("%s mul: got %v, want %v", name, dst, want)
	}

	c := [4]float32{1, 5, 3, 8}
	d := [4]float32{2, 3, 4, 7}
	k.min(&c, &d, &dst)
	if want := [4]float32{1, 3, 3, 7}; dst != want {
		t.Errorf("%s min: got %v, want %v", name, dst, want)
	}
	k.max(&c, &d, &dst)
	if want := [4]float32{2, 5, 4, 8}; dst != want {
		t.Errorf("%s max: got %v, want %v", name, dst, want)
	}
}

func checkNaN(t *testing.T, name string, k kernelSet) {
	t.Helper()
	nan := float32(math.NaN())
	a := [4]float32{nan, 1, nan, 2}
	b := [4]float32{3, nan, nan, 5}

	for _, tc := range []struct {
		op   string
		fn   kernel
		want [2]float32 // lanes 0 and 1; lane 2 must be NaN
		last float32
	}{
		{"min", k.min, [2]float32{3, 1}, 2},
		{"max", k.max, [2]float32{3, 1}, 5},
	} {
		var dst [4]float32
		tc.fn(&a, &b, &dst)
		if dst[0] != tc.want[0] || dst[1] != tc.want[1] {
			t.Errorf("%s %s: NaN lanes got (%v, %v), want (%v, %v)", name, tc.op, dst[0], dst[1], tc.want[0], tc.want[1])
		}
		if !math.IsNaN(float64(dst[2])) {
			t.Errorf("%s %s: both-NaN lane got %v, want NaN", name, tc.op, dst[2])
		}
		if dst[3] != tc.last {
			t.Errorf("%s %s: lane 3 got %v, want %v", name, tc.op, dst[3], tc.last)
		}
	}
}
