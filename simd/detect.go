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

import (
	"log/slog"
	"os"
	"sync"
)

// Environment variables consulted by Detect.
const (
	EnvNoSIMD = "SIMDCULL_NO_SIMD"
	EnvPath   = "SIMDCULL_PATH"
)

// Capabilities is a snapshot of the detected hardware and the Path chosen
// from it.
type Capabilities struct {
	Path     Path
	Features Features

	// Overridden is set when Path came from SIMDCULL_NO_SIMD or
	// SIMDCULL_PATH rather than from SelectPath.
	Overridden bool
}

// PathName returns the display name of the chosen path.
func (c Capabilities) PathName() string {
	return c.Path.String()
}

// HasSIMD reports whether the chosen path is anything other than scalar.
func (c Capabilities) HasSIMD() bool {
	return c.Path != PathScalar
}

// ExpectedSpeedup returns the static speedup estimate of the chosen path.
func (c Capabilities) ExpectedSpeedup() float32 {
	return c.Path.ExpectedSpeedup()
}

// SupportedPaths returns every path the hardware supports, in priority
// order, regardless of any override.
func (c Capabilities) SupportedPaths() []Path {
	return c.Features.SupportedPaths()
}

var detected = sync.OnceValue(func() Capabilities {
	return detectFrom(hostFeatures(), os.Getenv)
})

// Detect returns the process-wide capabilities. The first call inspects the
// CPU and environment; later calls return the cached result.
func Detect() Capabilities {
	return detected()
}

// CurrentPath returns Detect().Path.
func CurrentPath() Path {
	return detected().Path
}

// NoSimdEnv reports whether SIMDCULL_NO_SIMD is set.
func NoSimdEnv() bool {
	return os.Getenv(EnvNoSIMD) != ""
}

func detectFrom(f Features, getenv func(string) string) Capabilities {
	caps := Capabilities{Path: SelectPath(f), Features: f}
	log := Logger()

	switch {
	case getenv(EnvNoSIMD) != "":
		caps.Path = PathScalar
		caps.Overridden = true
	case getenv(EnvPath) != "":
		name := getenv(EnvPath)
		p, err := ParsePath(name)
		if err != nil {
			log.Warn("ignoring SIMD path override", slog.String("env", EnvPath), slog.Any("err", err))
			break
		}
		if !f.Supports(p) {
			log.Warn("ignoring unsupported SIMD path override",
				slog.String("env", EnvPath),
				slog.String("requested", p.String()),
				slog.String("detected", caps.Path.String()))
			break
		}
		caps.Path = p
		caps.Overridden = true
	}

	log.Debug("simd path selected",
		slog.String("path", caps.Path.String()),
		slog.Bool("overridden", caps.Overridden),
		slog.String("arch", f.Architecture),
		slog.String("platform", f.Platform),
		slog.Bool("avx512", f.HasAVX512),
		slog.Bool("avx2", f.HasAVX2),
		slog.Bool("sse42", f.HasSSE42),
		slog.Bool("neon", f.HasNEON),
		slog.Bool("simd128", f.HasSIMD128))
	return caps
}
