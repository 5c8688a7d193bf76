// Package parallel runs row-partitioned work across a fixed team of
// goroutines.
//
// Rows are claimed dynamically from a shared counter, so the next row
// handed out is always the lowest unclaimed one and faster workers absorb
// more rows than slower ones. A shared abort flag stops a pass early.
package parallel

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Workers clamps a requested worker count to [1, runtime.NumCPU()].
// Zero or a negative request selects runtime.NumCPU().
func Workers(n int) int {
	procs := runtime.NumCPU()
	if n <= 0 || n > procs {
		return procs
	}
	return n
}

// RowFunc computes one row for a worker. It returns false when it stopped
// before finishing the row, typically because it observed the abort flag.
type RowFunc func(worker, row int) bool

// Result summarizes one pass.
type Result struct {
	// Completed is the number of rows whose RowFunc returned true.
	Completed int
	// Claimed is the number of row indices handed out.
	Claimed int
	// PerWorker counts completed rows by worker id.
	PerWorker []int
	// Aborted is set when the pass stopped before every row was claimed
	// and completed.
	Aborted bool
	// Err is the context error, if the context ended the pass.
	Err error
}

// Team is a fixed-size worker team. A Team holds no goroutines between
// passes; each Run starts and joins its own.
//
// Thread safety: Run may be called from several goroutines, each call
// getting its own partition.
type Team struct {
	workers int
}

// NewTeam creates a team of Workers(n) workers.
func NewTeam(n int) *Team {
	return &Team{workers: Workers(n)}
}

// Workers returns the team size.
func (t *Team) Workers() int {
	return t.workers
}

// Run processes rows [0, rows) with the whole team and returns when every
// row is done, abort is set, or ctx ends.
//
// Each worker checks abort and ctx before every claim, so once abort is
// visible at most Workers()-1 further rows can be claimed. poll, if not
// nil, runs on the calling goroutine after rows complete (coalesced, at
// least once per completed row burst) and once more at the end; use it to
// pump input on the goroutine that owns the canvas.
//
// A nil abort uses a private flag that is never set.
func (t *Team) Run(ctx context.Context, rows int, abort *atomic.Bool, fn RowFunc, poll func()) Result {
	if abort == nil {
		abort = new(atomic.Bool)
	}
	p := newPartition(rows, t.workers)
	rowDone := make(chan struct{}, 1)

	g, gctx := errgroup.WithContext(ctx)
	for id := range t.workers {
		g.Go(func() error {
			for {
				if abort.Load() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				row, ok := p.counter.Claim()
				if !ok {
					return nil
				}
				if !fn(id, row) {
					return nil
				}
				p.perWorker[id].Add(1)
				p.completed.Add(1)
				select {
				case rowDone <- struct{}{}:
				default:
				}
			}
		})
	}

	finished := make(chan error, 1)
	go func() { finished <- g.Wait() }()

	for {
		select {
		case <-rowDone:
			if poll != nil {
				poll()
			}
		case err := <-finished:
			if poll != nil {
				poll()
			}
			return p.result(err)
		}
	}
}

// partition is the per-pass shared state: the row counter and per-worker
// tallies. It is discarded when the pass ends.
type partition struct {
	rows      int
	counter   *Counter
	completed atomic.Int64
	perWorker []atomic.Int64
}

func newPartition(rows, workers int) *partition {
	return &partition{
		rows:      rows,
		counter:   NewCounter(rows),
		perWorker: make([]atomic.Int64, workers),
	}
}

func (p *partition) result(err error) Result {
	r := Result{
		Completed: int(p.completed.Load()),
		Claimed:   p.counter.Claimed(),
		PerWorker: make([]int, len(p.perWorker)),
		Err:       err,
	}
	for i := range p.perWorker {
		r.PerWorker[i] = int(p.perWorker[i].Load())
	}
	r.Aborted = r.Completed < p.rows
	return r
}
