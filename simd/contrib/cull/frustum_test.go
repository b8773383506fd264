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

package cull

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/simdcull/simdcull/simd"
)

// perspective returns a right-handed perspective matrix looking down -Z with
// clip depth [0, 1] and a square aspect ratio.
func perspective(fovY, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0] = f
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
	return m
}

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestFrustumFromMatrixOrtho(t *testing.T) {
	// Maps [-10,10] on x and y to [-1,1] and z to [0,1].
	var m Mat4
	m[0] = 0.1
	m[5] = 0.1
	m[10] = 0.05
	m[14] = 0.5
	m[15] = 1
	got := FrustumFromMatrix(m)
	if diff := cmp.Diff(cube10, got, approx); diff != "" {
		t.Errorf("FrustumFromMatrix mismatch (-want +got):\n%s", diff)
	}
}

func TestFrustumFromMatrixGLOrtho(t *testing.T) {
	// Maps [-10,10]^3 to [-1,1]^3.
	var m Mat4
	m[0] = 0.1
	m[5] = 0.1
	m[10] = 0.1
	m[15] = 1
	got := FrustumFromMatrixGL(m)
	if diff := cmp.Diff(cube10, got, approx); diff != "" {
		t.Errorf("FrustumFromMatrixGL mismatch (-want +got):\n%s", diff)
	}
}

func TestFrustumFromMatrixNormalized(t *testing.T) {
	f := FrustumFromMatrix(perspective(math.Pi/3, 0.1, 100))
	for i, pl := range f {
		n := pl.Normal
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(l-1) > 1e-5 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestFrustumFromMatrixZeroPlane(t *testing.T) {
	var m Mat4 // all rows zero
	for i, pl := range FrustumFromMatrix(m) {
		if pl != (Plane{}) {
			t.Errorf("plane %d = %+v, want zero plane", i, pl)
		}
	}
}

func TestPerspectiveCulling(t *testing.T) {
	f := FrustumFromMatrix(perspective(math.Pi/2, 0.1, 100))
	boxes := []simd.AABB{
		box([3]float32{0, 0, -10}, 1),  // ahead
		box([3]float32{0, 0, 10}, 1),   // behind the camera
		box([3]float32{50, 0, -10}, 1), // right of the view
		box([3]float32{0, 0, -200}, 1), // past the far plane
		box([3]float32{0, 0, 0}, 1),    // around the camera
	}
	want := []bool{true, false, false, false, true}
	for _, p := range simd.Paths() {
		if diff := cmp.Diff(want, CullObjects(boxes, f, p)); diff != "" {
			t.Errorf("%v: CullObjects mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	tests := []struct {
		p    [3]float32
		want bool
	}{
		{[3]float32{0, 0, 0}, true},
		{[3]float32{10, 10, 10}, true},
		{[3]float32{-10, 0, 0}, true},
		{[3]float32{10.5, 0, 0}, false},
		{[3]float32{0, -11, 0}, false},
		{[3]float32{0, 0, 20}, false},
	}
	for _, tt := range tests {
		if got := cube10.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	pl := Plane{Normal: [3]float32{0, 1, 0}, Distance: -2}
	if got := pl.SignedDistance([3]float32{7, 5, -3}); got != 3 {
		t.Errorf("SignedDistance = %v, want 3", got)
	}
	if pl.Contains([3]float32{0, 1, 0}) {
		t.Error("Contains reported a point below the plane")
	}
}
