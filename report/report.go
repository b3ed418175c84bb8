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

// Package report validates the CORDIC kernel against float64 math.Sin and
// math.Cos. It sweeps a range of angles, measures the error of every result
// in bits of precision, and renders the outcome as text.
package report

import (
	"log/slog"
	"math"

	"github.com/samber/lo"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/internal/hostinfo"
	"github.com/ajroetker/go-cordic/internal/workerpool"
)

// ExactBits is reported for a result with zero error: two bits beyond the
// format resolution.
const ExactBits = cordic.FractionalBits + 2

// AccuracyBits returns floor(-log2(err)), or [ExactBits] when err is zero.
func AccuracyBits(err float64) int {
	if err == 0 {
		return ExactBits
	}
	return int(math.Floor(-math.Log2(err)))
}

// Entry is the kernel result for one angle next to its float64 reference.
type Entry struct {
	Degrees int
	Theta   cordic.Fixed

	Cos, Sin       cordic.Fixed
	RefCos, RefSin float64

	CosErr, SinErr   float64
	CosBits, SinBits int
}

// Report is the outcome of a sweep.
type Report struct {
	Config  Config
	Host    hostinfo.Info
	Entries []Entry
}

// Summary aggregates the worst results of a sweep.
type Summary struct {
	Angles int

	MaxCosErr, MaxSinErr     float64
	WorstCosDeg, WorstSinDeg int
	MinCosBits, MinSinBits   int
}

// Run evaluates the kernel for every angle in cfg. Angles are processed on a
// worker pool; entries are returned in angle order.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	angles := cfg.Angles()
	log := Logger()
	log.Debug("sweep", "from", cfg.FromDegrees, "to", cfg.ToDegrees, "step", cfg.StepDegrees,
		"angles", len(angles), "iterations", cfg.Iterations)
	if cordic.PrecisionLimitReached(cfg.Iterations) {
		log.Info("precision limit reached; more iterations add no accuracy",
			"iterations", cfg.Iterations, "limit", cordic.PrecisionLimit)
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	entries := make([]Entry, len(angles))
	err := pool.ParallelFor(len(angles), func(i int) error {
		var err error
		entries[i], err = evaluate(angles[i], cfg.Iterations)
		return err
	})
	if err != nil {
		return nil, err
	}

	want := cordic.ExpectedPrecisionBits(cfg.Iterations)
	for _, e := range entries {
		switch {
		case !convergent(e.Degrees):
			log.Warn("angle outside convergence range", "degrees", e.Degrees,
				"cos_bits", e.CosBits, "sin_bits", e.SinBits)
		case min(e.CosBits, e.SinBits) < want:
			log.Warn("accuracy below expectation", "degrees", e.Degrees,
				"cos_bits", e.CosBits, "sin_bits", e.SinBits, "want", want)
		}
	}

	r := &Report{Config: cfg, Host: hostinfo.Current(), Entries: entries}
	s := r.Summary()
	log.Info("sweep done", slog.Int("angles", s.Angles),
		slog.Int("min_cos_bits", s.MinCosBits), slog.Int("min_sin_bits", s.MinSinBits))
	return r, nil
}

func evaluate(deg, iterations int) (Entry, error) {
	theta := cordic.FromDegrees(float64(deg))
	cos, sin, err := cordic.Rotate(theta, iterations)
	if err != nil {
		return Entry{}, err
	}
	rad := float64(deg) * math.Pi / 180
	refSin, refCos := math.Sincos(rad)
	e := Entry{
		Degrees: deg,
		Theta:   theta,
		Cos:     cos,
		Sin:     sin,
		RefCos:  refCos,
		RefSin:  refSin,
		CosErr:  math.Abs(cos.Float64() - refCos),
		SinErr:  math.Abs(sin.Float64() - refSin),
	}
	e.CosBits = AccuracyBits(e.CosErr)
	e.SinBits = AccuracyBits(e.SinErr)
	return e, nil
}

// Summary returns the largest errors of the sweep and where they occurred.
func (r *Report) Summary() Summary {
	if len(r.Entries) == 0 {
		return Summary{}
	}
	worstCos := lo.MaxBy(r.Entries, func(a, b Entry) bool { return a.CosErr > b.CosErr })
	worstSin := lo.MaxBy(r.Entries, func(a, b Entry) bool { return a.SinErr > b.SinErr })
	return Summary{
		Angles:      len(r.Entries),
		MaxCosErr:   worstCos.CosErr,
		MaxSinErr:   worstSin.SinErr,
		WorstCosDeg: worstCos.Degrees,
		WorstSinDeg: worstSin.Degrees,
		MinCosBits:  worstCos.CosBits,
		MinSinBits:  worstSin.SinBits,
	}
}
