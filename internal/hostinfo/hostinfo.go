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

// Package hostinfo describes the CPU the process runs on. Reports print it so
// that accuracy numbers can be tied to the machine that produced them; the
// kernel itself is integer-only and does not depend on any feature.
package hostinfo

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info is a snapshot of the host architecture and its detected features.
type Info struct {
	OS       string
	Arch     string
	Features []string
	// Generic is true when detection was disabled with CORDIC_GENERIC_HOST.
	Generic bool
}

// current is filled once by init() in hostinfo_*.go files.
var current Info

// Current returns the host description detected at startup.
func Current() Info {
	info := current
	info.Features = append([]string(nil), current.Features...)
	return info
}

// String formats the description as "os/arch (feat1 feat2 ...)".
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.OS)
	b.WriteByte('/')
	b.WriteString(i.Arch)
	switch {
	case i.Generic:
		b.WriteString(" (generic)")
	case len(i.Features) > 0:
		b.WriteString(" (")
		b.WriteString(strings.Join(i.Features, " "))
		b.WriteByte(')')
	}
	return b.String()
}

// GenericEnv checks if the CORDIC_GENERIC_HOST environment variable is set.
// When set, feature detection is skipped and reports print a generic host,
// which keeps report output stable across machines.
func GenericEnv() bool {
	val := os.Getenv("CORDIC_GENERIC_HOST")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func detect(features func() []string) Info {
	info := Info{OS: runtime.GOOS, Arch: runtime.GOARCH}
	if GenericEnv() {
		info.Generic = true
		return info
	}
	info.Features = features()
	return info
}

// feature appends name to list when present.
func feature(list []string, present bool, name string) []string {
	if present {
		return append(list, name)
	}
	return list
}
