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

// AABB is a single axis-aligned bounding box.
// PRECONDITION: Min[a] <= Max[a] on every axis. Inverted boxes give
// undefined classification results; nothing checks for them.
type AABB struct {
	Min, Max [3]float32
}

// AABBFromCenterExtent builds the box center ± halfExtent.
func AABBFromCenterExtent(center, halfExtent [3]float32) AABB {
	var b AABB
	for a := 0; a < 3; a++ {
		b.Min[a] = center[a] - halfExtent[a]
		b.Max[a] = center[a] + halfExtent[a]
	}
	return b
}

// Center returns the midpoint of the box.
func (b AABB) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// HalfExtent returns half the size of the box on each axis.
func (b AABB) HalfExtent() [3]float32 {
	return [3]float32{
		(b.Max[0] - b.Min[0]) * 0.5,
		(b.Max[1] - b.Min[1]) * 0.5,
		(b.Max[2] - b.Min[2]) * 0.5,
	}
}

// AABBx4 holds four boxes in structure-of-arrays order: box i spans
// Min.Point(i) to Max.Point(i). The AABB precondition applies per lane;
// degenerate boxes (Min == Max on some axis) are fine.
type AABBx4 struct {
	Min, Max Vec3x4
}

// NewAABBx4 builds a batch from packed corners.
func NewAABBx4(lo, hi Vec3x4) AABBx4 {
	return AABBx4{Min: lo, Max: hi}
}

// AABBx4FromBoxes packs four boxes.
func AABBx4FromBoxes(b0, b1, b2, b3 AABB) AABBx4 {
	return AABBx4{
		Min: Vec3x4FromPoints(b0.Min, b1.Min, b2.Min, b3.Min),
		Max: Vec3x4FromPoints(b0.Max, b1.Max, b2.Max, b3.Max),
	}
}

// AABBx4FromCentersAndExtents builds Min = center - extent and
// Max = center + extent for all four boxes at once.
func AABBx4FromCentersAndExtents(centers, extents Vec3x4, p Path) AABBx4 {
	return AABBx4{
		Min: centers.Sub(extents, p),
		Max: centers.Add(extents, p),
	}
}

// Box unpacks box i.
func (b AABBx4) Box(i int) AABB {
	return AABB{Min: b.Min.Point(i), Max: b.Max.Point(i)}
}

// PlaneMask classifies the four boxes against the plane n·x + d >= 0.
//
// For each box the corner furthest along the normal is tested: Max on axes
// where the normal component is >= 0, Min elsewhere. Bit i is set when that
// corner is inside, i.e. the box is inside or straddles the plane. A box is
// only rejected when it lies entirely on the negative side.
func (b AABBx4) PlaneMask(normal [3]float32, distance float32, p Path) Mask {
	corner := b.Min
	if normal[0] >= 0 {
		corner.X = b.Max.X
	}
	if normal[1] >= 0 {
		corner.Y = b.Max.Y
	}
	if normal[2] >= 0 {
		corner.Z = b.Max.Z
	}
	d := corner.Dot(SplatVec3(normal), p).Add(Splat(distance), p)
	return d.NonNegativeMask()
}

// IntersectsPlane is PlaneMask expanded to one bool per box.
func (b AABBx4) IntersectsPlane(normal [3]float32, distance float32, p Path) [4]bool {
	return b.PlaneMask(normal, distance, p).Bools()
}

// IntersectsAABB returns a Mask with bit i set when box i overlaps other.
// Boxes that only touch on a face count as overlapping.
func (b AABBx4) IntersectsAABB(other AABB) Mask {
	oMin := SplatVec3(other.Min)
	oMax := SplatVec3(other.Max)
	return b.Max.X.GreaterEqualMask(oMin.X) &
		b.Max.Y.GreaterEqualMask(oMin.Y) &
		b.Max.Z.GreaterEqualMask(oMin.Z) &
		oMax.X.GreaterEqualMask(b.Min.X) &
		oMax.Y.GreaterEqualMask(b.Min.Y) &
		oMax.Z.GreaterEqualMask(b.Min.Z)
}
