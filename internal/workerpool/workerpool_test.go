// Copyright 2025 The go-cordic Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-cordic/cordic"
)

// parallelFor names the two scheduling strategies so every contract test
// runs against both.
var parallelFor = []struct {
	name string
	run  func(p *Pool, n int, fn func(i int) error) error
}{
	{"ParallelFor", (*Pool).ParallelFor},
	{"ParallelForAtomic", (*Pool).ParallelForAtomic},
}

func TestNumWorkers(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	if got := pool.NumWorkers(); got != 4 {
		t.Errorf("NumWorkers() = %d, want 4", got)
	}

	def := New(0)
	defer def.Close()
	if got, want := def.NumWorkers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("New(0).NumWorkers() = %d, want %d", got, want)
	}
}

// Each index runs exactly once whatever the ratio of jobs to workers.
func TestEveryIndexOnce(t *testing.T) {
	for _, pf := range parallelFor {
		for _, size := range []int{1, 3, 8} {
			for _, n := range []int{1, 2, 7, 100} {
				t.Run(fmt.Sprintf("%s/workers=%d/n=%d", pf.name, size, n), func(t *testing.T) {
					pool := New(size)
					defer pool.Close()

					hits := make([]atomic.Int32, n)
					if err := pf.run(pool, n, func(i int) error {
						hits[i].Add(1)
						return nil
					}); err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					for i := range hits {
						if got := hits[i].Load(); got != 1 {
							t.Errorf("index %d ran %d times, want 1", i, got)
						}
					}
				})
			}
		}
	}
}

func TestNoJobs(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, pf := range parallelFor {
		for _, n := range []int{0, -3} {
			err := pf.run(pool, n, func(int) error {
				t.Errorf("%s(%d) called fn", pf.name, n)
				return nil
			})
			if err != nil {
				t.Errorf("%s(%d) = %v, want nil", pf.name, n, err)
			}
		}
	}
}

// Iteration counts past the table length fail inside the jobs; the pool
// keeps evaluating the rest and reports every failure in index order.
func TestErrorsJoinedInIndexOrder(t *testing.T) {
	counts := []int{4, 0, 16, 17, 8, -1, 12, 40}
	bad := []int{0, 17, -1, 40}

	for _, pf := range parallelFor {
		t.Run(pf.name, func(t *testing.T) {
			pool := New(3)
			defer pool.Close()

			cos := make([]cordic.Fixed, len(counts))
			err := pf.run(pool, len(counts), func(i int) error {
				c, _, err := cordic.Rotate(cordic.FromDegrees(30), counts[i])
				if err != nil {
					return fmt.Errorf("iterations %d: %w", counts[i], err)
				}
				cos[i] = c
				return nil
			})
			if !errors.Is(err, cordic.ErrInvalidIterationCount) {
				t.Fatalf("err = %v, want ErrInvalidIterationCount", err)
			}

			var joined interface{ Unwrap() []error }
			if !errors.As(err, &joined) {
				t.Fatalf("err %T does not wrap a list", err)
			}
			var gotBad []int
			for _, e := range joined.Unwrap() {
				var n int
				if _, serr := fmt.Sscanf(e.Error(), "iterations %d:", &n); serr != nil {
					t.Fatalf("unexpected error text %q", e)
				}
				gotBad = append(gotBad, n)
			}
			if diff := cmp.Diff(bad, gotBad); diff != "" {
				t.Errorf("failed counts (-want +got):\n%s", diff)
			}

			for i, n := range counts {
				if n < 1 || n > cordic.MaxIterations {
					continue
				}
				if cos[i] == 0 {
					t.Errorf("iterations %d: no result despite other failures", n)
				}
			}
		})
	}
}

func TestSingleFailureUnchanged(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, pf := range parallelFor {
		err := pf.run(pool, 10, func(i int) error {
			if i == 6 {
				_, _, err := cordic.Rotate(0, 0)
				return err
			}
			return nil
		})
		if !errors.Is(err, cordic.ErrInvalidIterationCount) {
			t.Fatalf("%s: err = %v, want ErrInvalidIterationCount", pf.name, err)
		}
		if strings.Count(err.Error(), "\n") != 0 {
			t.Errorf("%s: single failure rendered on several lines: %q", pf.name, err)
		}
	}
}

// A closed pool still runs every job, on the calling goroutine.
func TestClosedPool(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	for _, pf := range parallelFor {
		var ran atomic.Int32
		err := pf.run(pool, 50, func(i int) error {
			ran.Add(1)
			if i == 49 {
				return cordic.ErrInvalidTable
			}
			return nil
		})
		if ran.Load() != 50 {
			t.Errorf("%s on closed pool ran %d jobs, want 50", pf.name, ran.Load())
		}
		if !errors.Is(err, cordic.ErrInvalidTable) {
			t.Errorf("%s on closed pool: err = %v, want ErrInvalidTable", pf.name, err)
		}
	}
}

// Rotate keeps no state between calls, so evaluating a sweep on the pool
// must match evaluating it sequentially bit for bit.
func TestParallelRotateMatchesSequential(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	const n = 4096
	lo, hi := -cordic.FromFloat64(1.5), cordic.FromFloat64(1.5)
	theta := func(i int) cordic.Fixed {
		return lo + cordic.Fixed(int64(hi-lo)*int64(i)/(n-1))
	}

	type pair struct{ cos, sin cordic.Fixed }
	want := make([]pair, n)
	for i := 0; i < n; i++ {
		c, s, err := cordic.Rotate(theta(i), cordic.MaxIterations)
		if err != nil {
			t.Fatalf("Rotate: %v", err)
		}
		want[i] = pair{c, s}
	}

	for _, pf := range parallelFor {
		got := make([]pair, n)
		err := pf.run(pool, n, func(i int) error {
			c, s, err := cordic.Rotate(theta(i), cordic.MaxIterations)
			got[i] = pair{c, s}
			return err
		})
		if err != nil {
			t.Fatalf("%s: %v", pf.name, err)
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
			t.Errorf("%s differs from sequential (-want +got):\n%s", pf.name, diff)
		}
	}
}

func BenchmarkSweep(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	const n = 1000
	for _, pf := range parallelFor {
		b.Run(pf.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = pf.run(pool, n, func(j int) error {
					_, _, err := cordic.Rotate(cordic.Fixed(j), cordic.MaxIterations)
					return err
				})
			}
		})
	}
}
