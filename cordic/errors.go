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

import "errors"

var (
	// ErrInvalidIterationCount indicates an iteration count outside
	// [1, table length].
	ErrInvalidIterationCount = errors.New("cordic: invalid iteration count")

	// ErrInvalidTable indicates arctangent table entries that are empty,
	// non-positive, or not strictly decreasing.
	ErrInvalidTable = errors.New("cordic: invalid arctangent table")
)

// PrecisionLimit is the iteration count at which the fixed-point resolution
// floor (2^-16) is reached. Further iterations add no precision.
const PrecisionLimit = FractionalBits

// PrecisionLimitReached reports whether iterations has reached the point
// where additional iterations cannot improve accuracy. It is informational,
// not an error.
func PrecisionLimitReached(iterations int) bool {
	return iterations >= PrecisionLimit
}

// ExpectedPrecisionBits returns the approximate number of correct fractional
// bits guaranteed over [-pi/2, pi/2] after the given number of iterations.
// It grows by one bit per iteration and saturates a few bits below the
// format resolution, where shift truncation dominates.
func ExpectedPrecisionBits(iterations int) int {
	return max(min(iterations-2, PrecisionLimit-4), 0)
}
