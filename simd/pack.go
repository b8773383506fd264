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

import "github.com/samber/lo"

// BatchCount returns the number of 4-wide batches needed for n objects.
func BatchCount(n int) int {
	return (n + 3) / 4
}

// PackAABBs converts boxes from object order into 4-wide batches.
//
// Padding policy: when len(boxes) is not a multiple of four, the last batch
// is filled by repeating the last box. Padded lanes are ordinary finite
// boxes, so they cannot disturb the real lanes, and callers drop every
// result past len(boxes) (see UnpackMasks).
func PackAABBs(boxes []AABB) []AABBx4 {
	if len(boxes) == 0 {
		return nil
	}
	chunks := lo.Chunk(boxes, 4)
	out := make([]AABBx4, len(chunks))
	for i, c := range chunks {
		q := padQuad(c)
		out[i] = AABBx4FromBoxes(q[0], q[1], q[2], q[3])
	}
	return out
}

// PackCentersExtents packs boxes given as center and half-extent pairs.
// Only the first min(len(centers), len(extents)) pairs are used. Padding
// follows PackAABBs.
func PackCentersExtents(centers, extents [][3]float32, p Path) []AABBx4 {
	n := min(len(centers), len(extents))
	if n == 0 {
		return nil
	}
	cs := lo.Chunk(centers[:n], 4)
	es := lo.Chunk(extents[:n], 4)
	out := make([]AABBx4, len(cs))
	for i := range cs {
		c := padQuad(cs[i])
		e := padQuad(es[i])
		out[i] = AABBx4FromCentersAndExtents(
			Vec3x4FromPoints(c[0], c[1], c[2], c[3]),
			Vec3x4FromPoints(e[0], e[1], e[2], e[3]),
			p)
	}
	return out
}

// UnpackAABBs converts batches back to object order, keeping the first n
// boxes. n larger than 4*len(batches) is clamped.
func UnpackAABBs(batches []AABBx4, n int) []AABB {
	n = clampCount(n, len(batches))
	out := make([]AABB, n)
	for i := range out {
		out[i] = batches[i/4].Box(i % 4)
	}
	return out
}

// UnpackMasks expands one Mask per batch into one bool per object, keeping
// the first n. n larger than 4*len(masks) is clamped.
func UnpackMasks(masks []Mask, n int) []bool {
	n = clampCount(n, len(masks))
	out := make([]bool, n)
	for i := range out {
		out[i] = masks[i/4].Lane(i % 4)
	}
	return out
}

func clampCount(n, batches int) int {
	return max(0, min(n, 4*batches))
}

// padQuad copies up to four items, repeating the last one to fill the rest.
// PRECONDITION: len(items) > 0.
func padQuad[T any](items []T) [4]T {
	var q [4]T
	n := copy(q[:], items)
	for i := n; i < 4; i++ {
		q[i] = items[n-1]
	}
	return q
}
