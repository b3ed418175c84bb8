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

// Command cordicreport validates the fixed-point CORDIC kernel against
// float64 sine and cosine and prints the accuracy in bits.
//
// Usage:
//
//	cordicreport                              # -90..90 deg in 10 deg steps
//	cordicreport -from 0 -to 45 -step 5 -iterations 12
//	cordicreport -trace 30                    # per-iteration state for one angle
//	cordicreport -profile -stride 1           # exhaustive accuracy per iteration count
//
// Environment:
//
//	CORDIC_WORKERS       default for -workers
//	CORDIC_NO_PARALLEL   evaluate on a single worker regardless of -workers
//	CORDIC_GENERIC_HOST  print a generic host line instead of CPU features
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/report"
)

// options holds the parsed command line.
type options struct {
	from, to, step int
	iterations     int
	workers        int
	trace          float64
	traceSet       bool
	profile        bool
	stride         int
	verbose        bool
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("cordicreport", flag.ContinueOnError)
	fs.IntVar(&o.from, "from", -90, "First angle in degrees")
	fs.IntVar(&o.to, "to", 90, "Last angle in degrees (inclusive)")
	fs.IntVar(&o.step, "step", 10, "Angle step in degrees")
	fs.IntVar(&o.iterations, "iterations", cordic.MaxIterations, fmt.Sprintf("CORDIC iterations (1-%d)", cordic.MaxIterations))
	fs.IntVar(&o.workers, "workers", 0, "Worker goroutines (default: $CORDIC_WORKERS or GOMAXPROCS)")
	fs.Float64Var(&o.trace, "trace", 0, "Print the rotation trace for this angle in degrees instead of a sweep")
	fs.BoolVar(&o.profile, "profile", false, "Print worst-case accuracy for every iteration count")
	fs.IntVar(&o.stride, "stride", 64, "Fixed-point stride between angles scanned by -profile")
	fs.BoolVar(&o.verbose, "v", false, "Enable debug logging on stderr")
	return fs
}

// parseArgs parses args into options. -trace selects trace mode whenever it
// is given, including -trace 0.
func parseArgs(args []string) (options, error) {
	var o options
	fs := newFlagSet(&o)
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.traceSet = traceRequested(fs)
	return o, nil
}

func traceRequested(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "trace" {
			set = true
		}
	})
	return set
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	report.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	env, err := loadEnv()
	if err != nil {
		fail(err)
	}
	if err := run(os.Stdout, o, resolveWorkers(o.workers, env)); err != nil {
		fail(err)
	}
}

// run dispatches to the selected mode and writes its output to w.
func run(w io.Writer, o options, workers int) error {
	switch {
	case o.traceSet:
		return runTrace(w, o.trace, o.iterations)
	case o.profile:
		return runProfile(w, o.iterations, o.stride, workers)
	}
	return runSweep(w, report.Config{
		FromDegrees: o.from,
		ToDegrees:   o.to,
		StepDegrees: o.step,
		Iterations:  o.iterations,
		Workers:     workers,
	})
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runSweep(w io.Writer, cfg report.Config) error {
	r, err := report.Run(cfg)
	if err != nil {
		return err
	}
	return r.WriteText(w)
}

func runTrace(w io.Writer, deg float64, iterations int) error {
	theta := cordic.FromDegrees(deg)
	steps, err := cordic.Trace(theta, iterations)
	if err != nil {
		return err
	}
	return report.WriteTrace(w, theta, steps)
}

func runProfile(w io.Writer, iterations, stride, workers int) error {
	rows, err := report.Profile(iterations, stride, workers)
	if err != nil {
		return err
	}
	return report.WriteProfile(w, rows)
}
