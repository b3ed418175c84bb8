// Copyright 2025 The go-cordic Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool evaluates independent, fallible jobs on a fixed set of
// goroutines. The report harness runs one kernel evaluation per index: a
// sweep angle or a profiled iteration count. Every job writes only its own
// output slot, and the failures come back joined in index order.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	err := pool.ParallelFor(len(angles), func(i int) error {
//	    var err error
//	    out[i], err = evaluate(angles[i])
//	    return err
//	})
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a set of persistent workers shared by all ParallelFor and
// ParallelForAtomic calls until Close.
type Pool struct {
	size   int
	tasks  chan func()
	once   sync.Once
	closed atomic.Bool
}

// New starts a pool with size workers. size <= 0 uses GOMAXPROCS.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, tasks: make(chan func(), size)}
	for i := 0; i < size; i++ {
		go func() {
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the workers once queued tasks finish. Later calls run jobs on
// the calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor runs fn(i) for every i in [0, n), giving each worker one
// contiguous range of indices. It blocks until all jobs return and reports
// their errors joined in index order, or nil.
func (p *Pool) ParallelFor(n int, fn func(i int) error) error {
	workers := p.workers(n)
	if workers == 0 {
		return nil
	}
	errs := make([]error, n)
	chunk := (n + workers - 1) / workers
	p.fanOut(workers, func(w int) {
		for i := w * chunk; i < min((w+1)*chunk, n); i++ {
			errs[i] = fn(i)
		}
	})
	return errors.Join(errs...)
}

// ParallelForAtomic is ParallelFor with indices handed out one at a time
// from a shared counter. Use it when jobs differ in cost, such as profiling
// iteration counts of increasing length.
func (p *Pool) ParallelForAtomic(n int, fn func(i int) error) error {
	workers := p.workers(n)
	if workers == 0 {
		return nil
	}
	errs := make([]error, n)
	var next atomic.Int64
	p.fanOut(workers, func(int) {
		for i := int(next.Add(1) - 1); i < n; i = int(next.Add(1) - 1) {
			errs[i] = fn(i)
		}
	})
	return errors.Join(errs...)
}

// workers returns how many workers take part in n jobs: none for n <= 0 and
// one on a closed pool.
func (p *Pool) workers(n int) int {
	switch {
	case n <= 0:
		return 0
	case p.closed.Load():
		return 1
	}
	return min(p.size, n)
}

// fanOut runs body(w) for w in [0, workers) and waits for all of them. A
// single worker runs inline on the caller.
func (p *Pool) fanOut(workers int, body func(w int)) {
	if workers == 1 {
		body(0)
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		p.tasks <- func() {
			defer wg.Done()
			body(w)
		}
	}
	wg.Wait()
}
