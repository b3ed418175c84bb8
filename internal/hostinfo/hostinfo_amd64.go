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

//go:build amd64

package hostinfo

import "golang.org/x/sys/cpu"

func init() {
	current = detect(detectX86)
}

func detectX86() []string {
	var f []string
	f = feature(f, cpu.X86.HasSSE2, "sse2")
	f = feature(f, cpu.X86.HasSSE41, "sse4.1")
	f = feature(f, cpu.X86.HasPOPCNT, "popcnt")
	f = feature(f, cpu.X86.HasAVX, "avx")
	f = feature(f, cpu.X86.HasAVX2, "avx2")
	f = feature(f, cpu.X86.HasFMA, "fma")
	f = feature(f, cpu.X86.HasBMI2, "bmi2")
	f = feature(f, cpu.X86.HasAVX512F, "avx512f")
	return f
}
