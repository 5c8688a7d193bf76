package parallel

import (
	"iter"
	"sync/atomic"
)

// Counter hands out row indices 0, 1, 2, ... up to a limit, each exactly
// once, to any number of goroutines.
type Counter struct {
	next  atomic.Int64
	limit int64
}

// NewCounter creates a counter over [0, limit).
func NewCounter(limit int) *Counter {
	if limit < 0 {
		limit = 0
	}
	return &Counter{limit: int64(limit)}
}

// Claim returns the lowest unclaimed index. ok is false once every index
// in [0, limit) has been handed out.
func (c *Counter) Claim() (row int, ok bool) {
	n := c.next.Add(1) - 1
	if n >= c.limit {
		return 0, false
	}
	return int(n), true
}

// Claimed returns how many indices have been handed out.
func (c *Counter) Claimed() int {
	n := c.next.Load()
	if n > c.limit {
		n = c.limit
	}
	return int(n)
}

// Limit returns the size of the index range.
func (c *Counter) Limit() int {
	return int(c.limit)
}

// Stripe yields worker, worker+workers, worker+2*workers, ... below n: the
// static interleaved split, for passes where every row costs the same.
func Stripe(worker, workers, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if workers < 1 {
			return
		}
		for i := worker; i < n; i += workers {
			if !yield(i) {
				return
			}
		}
	}
}
