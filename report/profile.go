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
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/internal/workerpool"
)

// halfPi is pi/2 in fixed point; profiles scan [-halfPi, halfPi].
var halfPi = cordic.FromFloat64(math.Pi / 2)

// ProfileRow is the worst-case accuracy over the convergence range for one
// iteration count.
type ProfileRow struct {
	Iterations   int
	MaxCosErr    float64
	MaxSinErr    float64
	Bits         int
	ExpectedBits int
	LimitReached bool
}

// Profile scans every stride-th fixed-point angle in [-pi/2, pi/2] for each
// iteration count in [1, maxIterations] and records the worst error. With
// stride 1 the scan is exhaustive.
func Profile(maxIterations, stride, workers int) ([]ProfileRow, error) {
	if maxIterations < 1 || maxIterations > cordic.MaxIterations {
		return nil, fmt.Errorf("%w: iterations %d not in [1, %d]: %w",
			ErrInvalidConfig, maxIterations, cordic.MaxIterations, cordic.ErrInvalidIterationCount)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride %d must be positive", ErrInvalidConfig, stride)
	}
	Logger().Debug("profile", "iterations", maxIterations, "stride", stride)

	pool := workerpool.New(workers)
	defer pool.Close()

	counts := lo.RangeFrom(1, maxIterations)
	rows := make([]ProfileRow, len(counts))
	// Higher counts cost more per angle, so indices are handed out one at
	// a time.
	err := pool.ParallelForAtomic(len(counts), func(i int) error {
		var err error
		rows[i], err = profileRow(counts[i], stride)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		Logger().Info("profile row", "iterations", r.Iterations, "bits", r.Bits, "expected", r.ExpectedBits)
	}
	return rows, nil
}

func profileRow(n, stride int) (ProfileRow, error) {
	row := ProfileRow{
		Iterations:   n,
		ExpectedBits: cordic.ExpectedPrecisionBits(n),
		LimitReached: cordic.PrecisionLimitReached(n),
	}
	for t := -int64(halfPi); t <= int64(halfPi); t += int64(stride) {
		theta := cordic.Fixed(t)
		cos, sin, err := cordic.Rotate(theta, n)
		if err != nil {
			return ProfileRow{}, err
		}
		sinRef, cosRef := math.Sincos(theta.Float64())
		row.MaxCosErr = max(row.MaxCosErr, math.Abs(cos.Float64()-cosRef))
		row.MaxSinErr = max(row.MaxSinErr, math.Abs(sin.Float64()-sinRef))
	}
	row.Bits = AccuracyBits(max(row.MaxCosErr, row.MaxSinErr))
	return row, nil
}
