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

// Package atangen computes the CORDIC constants in floating point. It is used
// offline by cmd/cordicgen and by tests; the kernel never imports it.
package atangen

import "math"

// FractionalBits matches cordic.FractionalBits.
const FractionalBits = 16

// MaxEntries is the largest table length for which every entry is positive
// at 16 fractional bits.
const MaxEntries = 17

// ToFixed rounds f * 2^16 to the nearest integer.
func ToFixed(f float64) int32 {
	return int32(math.Round(f * (1 << FractionalBits)))
}

// Entries returns round(atan(2^-i) * 2^16) for i in [0, n).
func Entries(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = ToFixed(math.Atan(math.Ldexp(1, -i)))
	}
	return out
}

// Gain returns 1/A(n), where A(n) = prod sqrt(1 + 2^-2i) for i in [0, n) is
// the vector growth of n CORDIC rotations.
func Gain(n int) float64 {
	a := 1.0
	for i := 0; i < n; i++ {
		a *= math.Sqrt(1 + math.Ldexp(1, -2*i))
	}
	return 1 / a
}

// GainFixed returns Gain(n) in fixed point.
func GainFixed(n int) int32 {
	return ToFixed(Gain(n))
}
