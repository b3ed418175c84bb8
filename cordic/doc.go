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

// Package cordic computes sine and cosine in Q16 fixed point with the CORDIC
// rotation-mode algorithm.
//
// The kernel uses only additions, subtractions and arithmetic shifts. The
// convergence constants arctan(2^-i) live in a precomputed table generated by
// cmd/cordicgen, so no transcendental function is evaluated at run time.
//
// # Fixed-Point Format
//
// A [Fixed] is an int32 holding a real number scaled by 2^16. Angles are in
// radians. Accumulation happens in int64 and is narrowed back to [Fixed] with
// saturation once the loop completes.
//
// # Usage
//
//	theta := cordic.FromDegrees(30)
//	cos, sin, err := cordic.Rotate(theta, 16)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cos, sin) // 0.86607 0.50002
//
// # Convergence
//
// The rotation-mode algorithm converges for |theta| up to the sum of the table
// entries (about 1.743 rad), which covers [-pi/2, pi/2]. Inputs outside that
// range are not reduced and produce inaccurate results without failing.
//
// Each iteration adds roughly one bit of precision until the 16 fractional
// bits are exhausted. See [PrecisionLimitReached].
//
// # Concurrency
//
// All functions are pure. The table is immutable after package
// initialization, so any number of goroutines may call [Rotate] concurrently.
package cordic
