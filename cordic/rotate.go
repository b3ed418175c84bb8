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

// rotation is the kernel state. x and y are proportional to cosine and sine,
// z is the residual angle. All three are widened to int64 so that shifts and
// sums of int32 inputs cannot overflow.
type rotation struct {
	x, y, z int64
}

func start(theta Fixed) rotation {
	return rotation{x: int64(gain), y: 0, z: int64(theta)}
}

// step performs iteration i with table entry angle and returns the direction
// taken (+1 counter-clockwise, -1 clockwise). x and y are both updated from
// their pre-step values.
func (r *rotation) step(i int, angle Fixed) int {
	x, y := r.x, r.y
	if r.z >= 0 {
		r.x = x - (y >> i)
		r.y = y + (x >> i)
		r.z -= int64(angle)
		return 1
	}
	r.x = x + (y >> i)
	r.y = y - (x >> i)
	r.z += int64(angle)
	return -1
}

// Rotate computes the cosine and sine of theta (radians, fixed point) with
// the default table. See [Table.Rotate].
func Rotate(theta Fixed, iterations int) (cos, sin Fixed, err error) {
	return defaultTable.Rotate(theta, iterations)
}

// SinCos returns the sine and cosine of theta using every table entry.
func SinCos(theta Fixed) (sin, cos Fixed) {
	r := start(theta)
	for i, a := range atanTable {
		r.step(i, a)
	}
	cos, _ = narrow(r.x)
	sin, _ = narrow(r.y)
	return sin, cos
}

// Rotate computes the cosine and sine of theta (radians, fixed point) by
// running iterations CORDIC steps over t.
//
// iterations must be in [1, t.Len()]; otherwise the error wraps
// [ErrInvalidIterationCount] and no table entry is read. theta should lie in
// [-pi/2, pi/2]; larger angles are not reduced and give inaccurate results.
// Results outside the Fixed range saturate.
func (t *Table) Rotate(theta Fixed, iterations int) (cos, sin Fixed, err error) {
	if err := t.checkIterations(iterations); err != nil {
		return 0, 0, err
	}
	r := start(theta)
	for i := 0; i < iterations; i++ {
		r.step(i, t.entries[i])
	}
	cos, _ = narrow(r.x)
	sin, _ = narrow(r.y)
	return cos, sin, nil
}

// Step is the rotation state after one iteration.
type Step struct {
	Iteration int
	// Direction is +1 when the residual was non-negative and the vector
	// rotated counter-clockwise, -1 otherwise.
	Direction int
	// Angle is the table entry consumed by this step.
	Angle    Fixed
	X, Y     Fixed
	Residual Fixed
}

// Trace runs the same rotation as [Rotate] and records the state after every
// iteration. The last step's X and Y equal Rotate's cos and sin.
func Trace(theta Fixed, iterations int) ([]Step, error) {
	return defaultTable.Trace(theta, iterations)
}

// Trace is [Trace] over t.
func (t *Table) Trace(theta Fixed, iterations int) ([]Step, error) {
	if err := t.checkIterations(iterations); err != nil {
		return nil, err
	}
	steps := make([]Step, iterations)
	r := start(theta)
	for i := 0; i < iterations; i++ {
		a := t.entries[i]
		dir := r.step(i, a)
		x, _ := narrow(r.x)
		y, _ := narrow(r.y)
		z, _ := narrow(r.z)
		steps[i] = Step{Iteration: i, Direction: dir, Angle: a, X: x, Y: y, Residual: z}
	}
	return steps, nil
}
