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
	"io"
	"text/tabwriter"

	"github.com/ajroetker/go-cordic/cordic"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// WriteText renders the sweep as an aligned table followed by a summary.
func (r *Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "CORDIC Q%d sweep: %d iterations, host %s\n\n",
		cordic.FractionalBits, r.Config.Iterations, r.Host)

	tw := newTable(w)
	fmt.Fprintln(tw, "Angle\tTheta\tCos\tSin\tmath.Cos\tmath.Sin\tCos error\tSin error\tCos bits\tSin bits\t")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.5f\t%.5f\t%.7f\t%.7f\t%d\t%d\t\n",
			e.Degrees, e.Theta, e.Cos, e.Sin, e.RefCos, e.RefSin,
			e.CosErr, e.SinErr, e.CosBits, e.SinBits)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary()
	_, err := fmt.Fprintf(w, "\nworst cos: %d bits at %d deg (error %.7f)\nworst sin: %d bits at %d deg (error %.7f)\n",
		s.MinCosBits, s.WorstCosDeg, s.MaxCosErr, s.MinSinBits, s.WorstSinDeg, s.MaxSinErr)
	return err
}

// WriteProfile renders accuracy per iteration count.
func WriteProfile(w io.Writer, rows []ProfileRow) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Iterations\tMax cos error\tMax sin error\tBits\tExpected\tLimit\t")
	for _, r := range rows {
		limit := ""
		if r.LimitReached {
			limit = "reached"
		}
		fmt.Fprintf(tw, "%d\t%.7f\t%.7f\t%d\t%d\t%s\t\n",
			r.Iterations, r.MaxCosErr, r.MaxSinErr, r.Bits, r.ExpectedBits, limit)
	}
	return tw.Flush()
}

// WriteTrace renders the rotation state after every iteration of a single
// angle, showing the residual shrinking toward zero.
func WriteTrace(w io.Writer, theta cordic.Fixed, steps []cordic.Step) error {
	fmt.Fprintf(w, "theta = %d (%s rad)\n\n", theta, theta)
	tw := newTable(w)
	fmt.Fprintln(tw, "i\tdir\tx\ty\tz\tatan(2^-i)\t")
	for _, s := range steps {
		dir := "+"
		if s.Direction < 0 {
			dir = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t\n",
			s.Iteration, dir, s.X, s.Y, s.Residual, s.Angle)
	}
	return tw.Flush()
}
