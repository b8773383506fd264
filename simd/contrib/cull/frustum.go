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

import "math"

// Plane is the half-space Normal·p + Distance >= 0.
// The normal is not required to be unit length.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Contains reports whether point p is on the positive side of the plane.
func (pl Plane) Contains(p [3]float32) bool {
	return pl.SignedDistance(p) >= 0
}

// SignedDistance returns Normal·p + Distance. It is a true distance only
// when Normal has unit length.
func (pl Plane) SignedDistance(p [3]float32) float32 {
	return pl.Normal[0]*p[0] + pl.Normal[1]*p[1] + pl.Normal[2]*p[2] + pl.Distance
}

func (pl Plane) normalized() Plane {
	n := pl.Normal
	l := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if l == 0 {
		return pl
	}
	inv := 1 / l
	return Plane{
		Normal:   [3]float32{n[0] * inv, n[1] * inv, n[2] * inv},
		Distance: pl.Distance * inv,
	}
}

// Frustum is six planes with inward-facing normals, in the order left,
// right, bottom, top, near, far.
type Frustum [6]Plane

// Plane indices within a Frustum.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Mat4 is a 4x4 matrix in column-major order: element (row r, column c) is
// m[4*c+r]. This is the layout used by WebGPU, Vulkan and OpenGL uniform
// buffers.
type Mat4 [16]float32

func (m Mat4) row(r int) [4]float32 {
	return [4]float32{m[r], m[4+r], m[8+r], m[12+r]}
}

func combine(a, b [4]float32, sign float32) Plane {
	return Plane{
		Normal:   [3]float32{a[0] + sign*b[0], a[1] + sign*b[1], a[2] + sign*b[2]},
		Distance: a[3] + sign*b[3],
	}.normalized()
}

// FrustumFromMatrix extracts the frustum of a view-projection matrix whose
// clip space depth runs from 0 to 1 (WebGPU, Vulkan, Direct3D).
// Planes are normalized unless a row combination has a zero-length normal.
func FrustumFromMatrix(m Mat4) Frustum {
	f := sidePlanes(m)
	r2, r3 := m.row(2), m.row(3)
	f[Near] = Plane{Normal: [3]float32{r2[0], r2[1], r2[2]}, Distance: r2[3]}.normalized()
	f[Far] = combine(r3, r2, -1)
	return f
}

// FrustumFromMatrixGL is FrustumFromMatrix for OpenGL clip space, whose
// depth runs from -1 to 1.
func FrustumFromMatrixGL(m Mat4) Frustum {
	f := sidePlanes(m)
	r2, r3 := m.row(2), m.row(3)
	f[Near] = combine(r3, r2, 1)
	f[Far] = combine(r3, r2, -1)
	return f
}

func sidePlanes(m Mat4) Frustum {
	r0, r1, r3 := m.row(0), m.row(1), m.row(3)
	var f Frustum
	f[Left] = combine(r3, r0, 1)
	f[Right] = combine(r3, r0, -1)
	f[Bottom] = combine(r3, r1, 1)
	f[Top] = combine(r3, r1, -1)
	return f
}

// FrustumFromBox returns the frustum bounding the box [lo, hi]. Useful for
// orthographic views and region queries.
func FrustumFromBox(lo, hi [3]float32) Frustum {
	return Frustum{
		Left:   {Normal: [3]float32{1, 0, 0}, Distance: -lo[0]},
		Right:  {Normal: [3]float32{-1, 0, 0}, Distance: hi[0]},
		Bottom: {Normal: [3]float32{0, 1, 0}, Distance: -lo[1]},
		Top:    {Normal: [3]float32{0, -1, 0}, Distance: hi[1]},
		Near:   {Normal: [3]float32{0, 0, 1}, Distance: -lo[2]},
		Far:    {Normal: [3]float32{0, 0, -1}, Distance: hi[2]},
	}
}

// ContainsPoint reports whether p is inside every plane.
func (f Frustum) ContainsPoint(p [3]float32) bool {
	for _, pl := range f {
		if !pl.Contains(p) {
			return false
		}
	}
	return true
}
