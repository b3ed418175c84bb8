// Copyright 2025 go-cordic Authors
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

package hostinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	info := Current()
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if !strings.HasPrefix(info.String(), runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, want prefix %s/%s", info.String(), runtime.GOOS, runtime.GOARCH)
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	a := Current()
	if len(a.Features) == 0 {
		t.Skip("no features detected")
	}
	a.Features[0] = "mutated"
	if b := Current(); b.Features[0] == "mutated" {
		t.Error("Current() shares its Features slice with callers")
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no features", Info{OS: "linux", Arch: "riscv64"}, "linux/riscv64"},
		{"features", Info{OS: "linux", Arch: "amd64", Features: []string{"sse2", "avx2"}}, "linux/amd64 (sse2 avx2)"},
		{"generic", Info{OS: "darwin", Arch: "arm64", Features: []string{"fp"}, Generic: true}, "darwin/arm64 (generic)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenericEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("CORDIC_GENERIC_HOST", tt.value)
			if got := GenericEnv(); got != tt.want {
				t.Errorf("GenericEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDetectGeneric(t *testing.T) {
	t.Setenv("CORDIC_GENERIC_HOST", "1")
	called := false
	info := detect(func() []string {
		called = true
		return []string{"x"}
	})
	if called {
		t.Error("detect reported CPU features with CORDIC_GENERIC_HOST set")
	}
	if !info.Generic || info.Features != nil {
		t.Errorf("detect() = %+v, want generic with no features", info)
	}
}
