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

package report

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ajroetker/go-cordic/cordic"
)

// ErrInvalidConfig indicates a sweep configuration that cannot be run.
var ErrInvalidConfig = errors.New("report: invalid config")

// Config describes an angle sweep.
type Config struct {
	// FromDegrees and ToDegrees bound the sweep, both inclusive.
	FromDegrees int
	ToDegrees   int
	StepDegrees int

	// Iterations is passed to the kernel for every angle.
	Iterations int

	// Workers is the number of goroutines evaluating angles.
	// Zero uses GOMAXPROCS.
	Workers int
}

// DefaultConfig sweeps -90 to 90 degrees in 10 degree steps with the full
// table.
func DefaultConfig() Config {
	return Config{
		FromDegrees: -90,
		ToDegrees:   90,
		StepDegrees: 10,
		Iterations:  cordic.MaxIterations,
	}
}

// Validate checks the sweep bounds and the iteration count.
func (c Config) Validate() error {
	if c.StepDegrees <= 0 {
		return fmt.Errorf("%w: step %d must be positive", ErrInvalidConfig, c.StepDegrees)
	}
	if c.FromDegrees > c.ToDegrees {
		return fmt.Errorf("%w: from %d is after to %d", ErrInvalidConfig, c.FromDegrees, c.ToDegrees)
	}
	if c.Iterations < 1 || c.Iterations > cordic.MaxIterations {
		return fmt.Errorf("%w: iterations %d not in [1, %d]: %w",
			ErrInvalidConfig, c.Iterations, cordic.MaxIterations, cordic.ErrInvalidIterationCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Angles returns the swept angles in degrees, in increasing order.
func (c Config) Angles() []int {
	return lo.RangeWithSteps(c.FromDegrees, c.ToDegrees+1, c.StepDegrees)
}

// convergent reports whether deg lies inside [-90, 90], where the rotation
// converges without angle reduction.
func convergent(deg int) bool {
	return deg >= -90 && deg <= 90
}
