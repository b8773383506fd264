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

// Package main prints the CPU features seen by Go and the SIMD path simdcull
// selects from them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/simdcull/simdcull/simd"
	"github.com/simdcull/simdcull/simd/contrib/cull"
	"github.com/simdcull/simdcull/simd/platform"
)

var verbose = flag.Bool("v", false, "log detection at debug level")

var title = cases.Title(language.English)

func heading(s string) {
	fmt.Printf("=== %s ===\n", title.String(s))
}

func main() {
	flag.Parse()
	if *verbose {
		simd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Printf("Platform: %s\n", platform.Name())
	fmt.Println()

	caps := simd.Detect()
	heading("simd path")
	fmt.Printf("  Path:             %s\n", caps.PathName())
	fmt.Printf("  HasSIMD:          %v\n", caps.HasSIMD())
	fmt.Printf("  Expected speedup: %.1fx\n", caps.ExpectedSpeedup())
	fmt.Printf("  Overridden:       %v\n", caps.Overridden)
	if simd.NoSimdEnv() {
		fmt.Printf("  (%s is set)\n", simd.EnvNoSIMD)
	}
	names := make([]string, 0, len(caps.SupportedPaths()))
	for _, p := range caps.SupportedPaths() {
		names = append(names, p.String())
	}
	fmt.Printf("  Supported:        %s\n", strings.Join(names, ", "))
	fmt.Println()

	heading("detected features")
	fmt.Printf("  AVX-512:      %v\n", caps.Features.HasAVX512)
	fmt.Printf("  AVX2:         %v\n", caps.Features.HasAVX2)
	fmt.Printf("  SSE4.2:       %v\n", caps.Features.HasSSE42)
	fmt.Printf("  NEON:         %v\n", caps.Features.HasNEON)
	fmt.Printf("  WASM SIMD128: %v\n", caps.Features.HasSIMD128)
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	fmt.Println()
	printSelfTest(caps.Path)
}

func printARM64Features() {
	heading("golang.org/x/sys/cpu arm64")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	heading("golang.org/x/sys/cpu x86")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:    %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}

// printSelfTest culls a fixed scene on the selected path and on the scalar
// path and reports whether they agree.
func printSelfTest(p simd.Path) {
	heading("self test")
	var boxes []simd.AABB
	for i := 0; i < 10; i++ {
		c := [3]float32{float32(i*4 - 18), 0, 0}
		boxes = append(boxes, simd.AABBFromCenterExtent(c, [3]float32{1, 1, 1}))
	}
	f := cull.FrustumFromBox([3]float32{-10, -10, -10}, [3]float32{10, 10, 10})

	got := cull.CullObjects(boxes, f, p)
	want := cull.CullObjects(boxes, f, simd.PathScalar)
	fmt.Printf("  %s\n", cull.Summarize(got, p))
	fmt.Printf("  Matches scalar: %v\n", slices.Equal(got, want))
}
