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
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/simdcull/simdcull/simd"
)

// Cull tests every batch against all six planes of f and returns one bool per
// lane, in batch order: result[4*i+j] is lane j of batches[i].
//
// All six planes are evaluated for every batch; a lane is visible when every
// plane mask has it set. Degenerate boxes need no special handling. Padding
// lanes are reported like any other lane, so the result length is always
// 4*len(batches).
func Cull(batches []simd.AABBx4, f Frustum, path simd.Path) []bool {
	masks := make([]simd.Mask, len(batches))
	for i := range batches {
		masks[i] = cullBatch(&batches[i], &f, path)
	}
	return simd.UnpackMasks(masks, 4*len(batches))
}

func cullBatch(b *simd.AABBx4, f *Frustum, path simd.Path) simd.Mask {
	m := simd.MaskAll
	for i := range f {
		m &= b.PlaneMask(f[i].Normal, f[i].Distance, path)
	}
	return m
}

// CullObjects packs boxes, culls them against f and returns one bool per box
// in the caller's order. Padding results are discarded.
func CullObjects(boxes []simd.AABB, f Frustum, path simd.Path) []bool {
	if len(boxes) == 0 {
		return []bool{}
	}
	return Cull(simd.PackAABBs(boxes), f, path)[:len(boxes)]
}

// CullViews culls the same batches against several frustums concurrently,
// one goroutine per view. At most limit views run at once; limit <= 0 means
// no limit. result[v] is Cull(batches, frustums[v], path).
//
// Views share batches read-only and each writes its own result slice. If ctx
// is done before every view has run, CullViews returns the context's error
// and no results.
func CullViews(ctx context.Context, batches []simd.AABBx4, frustums []Frustum, path simd.Path, limit int) ([][]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	simd.Logger().Debug("culling views",
		"views", len(frustums), "batches", len(batches), "path", path.String())

	out := make([][]bool, len(frustums))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range frustums {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Cull(batches, frustums[i], path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary describes one culling pass.
type Summary struct {
	Checked int       // objects tested
	Visible int       // objects reported visible
	Batches int       // 4-wide batches needed for Checked objects
	Path    simd.Path // path the pass ran on
}

// Summarize counts the results of a culling pass.
func Summarize(vis []bool, path simd.Path) Summary {
	return Summary{
		Checked: len(vis),
		Visible: lo.CountBy(vis, func(v bool) bool { return v }),
		Batches: simd.BatchCount(len(vis)),
		Path:    path,
	}
}

// Culled returns the number of objects rejected.
func (s Summary) Culled() int {
	return s.Checked - s.Visible
}

// CulledRatio returns the fraction of objects rejected, or 0 when nothing
// was checked.
func (s Summary) CulledRatio() float64 {
	if s.Checked == 0 {
		return 0
	}
	return float64(s.Culled()) / float64(s.Checked)
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d visible in %d batches (%s)", s.Visible, s.Checked, s.Batches, s.Path)
}
