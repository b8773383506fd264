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

// Vec3x4 holds four 3D points in structure-of-arrays order: point i is
// (X[i], Y[i], Z[i]).
type Vec3x4 struct {
	X, Y, Z F32x4
}

// NewVec3x4 packs four points given as consecutive (x, y, z) triples.
func NewVec3x4(x0, y0, z0, x1, y1, z1, x2, y2, z2, x3, y3, z3 float32) Vec3x4 {
	return Vec3x4{
		X: F32x4{x0, x1, x2, x3},
		Y: F32x4{y0, y1, y2, y3},
		Z: F32x4{z0, z1, z2, z3},
	}
}

// Vec3x4FromPoints packs four points.
func Vec3x4FromPoints(p0, p1, p2, p3 [3]float32) Vec3x4 {
	return Vec3x4{
		X: F32x4{p0[0], p1[0], p2[0], p3[0]},
		Y: F32x4{p0[1], p1[1], p2[1], p3[1]},
		Z: F32x4{p0[2], p1[2], p2[2], p3[2]},
	}
}

// SplatVec3 replicates one point into all four lanes.
func SplatVec3(p [3]float32) Vec3x4 {
	return Vec3x4{X: Splat(p[0]), Y: Splat(p[1]), Z: Splat(p[2])}
}

// Point unpacks point i.
func (v Vec3x4) Point(i int) [3]float32 {
	return [3]float32{v.X[i], v.Y[i], v.Z[i]}
}

// Points unpacks all four points in lane order.
func (v Vec3x4) Points() [4][3]float32 {
	return [4][3]float32{v.Point(0), v.Point(1), v.Point(2), v.Point(3)}
}

// Add returns the per-axis sum of v and o.
func (v Vec3x4) Add(o Vec3x4, p Path) Vec3x4 {
	return Vec3x4{X: v.X.Add(o.X, p), Y: v.Y.Add(o.Y, p), Z: v.Z.Add(o.Z, p)}
}

// Sub returns the per-axis difference v - o.
func (v Vec3x4) Sub(o Vec3x4, p Path) Vec3x4 {
	return Vec3x4{X: v.X.Sub(o.X, p), Y: v.Y.Sub(o.Y, p), Z: v.Z.Sub(o.Z, p)}
}

// Dot returns the four dot products v[i]·o[i] as one vector.
//
// It is three lane-wise multiplies and two lane-wise adds, accumulated as
// (x*x' + y*y') + z*z'. No lanes are mixed.
func (v Vec3x4) Dot(o Vec3x4, p Path) F32x4 {
	xy := v.X.Mul(o.X, p).Add(v.Y.Mul(o.Y, p), p)
	return xy.Add(v.Z.Mul(o.Z, p), p)
}
