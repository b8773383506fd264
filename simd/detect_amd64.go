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

//go:build amd64

package simd

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/simdcull/simdcull/simd/platform"
)

// hostFeatures reads CPUID through x/sys/cpu, which also checks that the OS
// saves the wider register state (XCR0) before reporting AVX2 or AVX-512.
func hostFeatures() Features {
	return Features{
		HasAVX512:    cpu.X86.HasAVX512F,
		HasAVX2:      cpu.X86.HasAVX2,
		HasSSE42:     cpu.X86.HasSSE42,
		Architecture: runtime.GOARCH,
		Platform:     platform.Name(),
	}
}
