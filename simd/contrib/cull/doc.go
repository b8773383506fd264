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

// Package cull tests batches of axis-aligned bounding boxes against view
// frustums using the 4-wide operations of package simd.
//
// A box is visible when, for every one of the six frustum planes, the box is
// inside or intersects the plane's positive half-space. The test is
// conservative: a box is never culled while any part of it may be inside, but
// a box just outside a frustum corner can be reported visible.
//
// # Example Usage
//
//	import (
//	    "github.com/simdcull/simdcull/simd"
//	    "github.com/simdcull/simdcull/simd/contrib/cull"
//	)
//
//	path := simd.CurrentPath()
//	f := cull.FrustumFromMatrix(viewProj)
//	visible := cull.CullObjects(boxes, f, path) // one bool per box
//
// Several cameras (for example shadow cascades) can share one packed scene:
//
//	batches := simd.PackAABBs(boxes)
//	views, err := cull.CullViews(ctx, batches, frustums, path, 0)
//
// Partial batches are padded by simd.PackAABBs by repeating the last box.
// Cull itself cannot tell real lanes from padding, so its output always has
// four entries per batch; CullObjects trims them.
package cull
