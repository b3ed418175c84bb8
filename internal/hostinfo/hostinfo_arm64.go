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

//go:build arm64

package hostinfo

import "golang.org/x/sys/cpu"

func init() {
	current = detect(detectARM64)
}

func detectARM64() []string {
	var f []string
	// FP and ASIMD are part of the ARMv8-A base architecture but are
	// reported for consistency with soft-float targets.
	f = feature(f, cpu.ARM64.HasFP, "fp")
	f = feature(f, cpu.ARM64.HasASIMD, "asimd")
	f = feature(f, cpu.ARM64.HasFPHP, "fphp")
	f = feature(f, cpu.ARM64.HasATOMICS, "atomics")
	f = feature(f, cpu.ARM64.HasSVE, "sve")
	return f
}
