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

package cordic

import (
	"math"
	"strconv"
)

// FractionalBits is the number of fractional bits in a [Fixed].
const FractionalBits = 16

// One is 1.0 in fixed point.
const One Fixed = 1 << FractionalBits

// Fixed is a signed real number scaled by 2^16.
type Fixed int32

// FromFloat64 converts f to fixed point, rounding to nearest.
// Values outside the representable range saturate; NaN maps to 0.
func FromFloat64(f float64) Fixed {
	if math.IsNaN(f) {
		return 0
	}
	v := math.Round(f * float64(One))
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return Fixed(v)
}

// FromDegrees converts an angle in degrees to fixed-point radians.
func FromDegrees(deg float64) Fixed {
	return FromFloat64(deg * math.Pi / 180)
}

// Float64 returns f as a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / float64(One)
}

// String formats f as a decimal with five fractional digits.
func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', 5, 64)
}

// narrow converts a wide accumulator back to Fixed.
// Out-of-range values saturate and ok is false.
func narrow(v int64) (f Fixed, ok bool) {
	if v > math.MaxInt32 {
		return math.MaxInt32, false
	}
	if v < math.MinInt32 {
		return math.MinInt32, false
	}
	return Fixed(v), true
}
