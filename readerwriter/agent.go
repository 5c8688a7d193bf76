package readerwriter

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/gogpu/tsgl"
)

// Role tells readers from writers.
type Role int

const (
	// Reader reads a random item's color.
	Reader Role = iota
	// Writer recolors a random item.
	Writer
)

func (r Role) String() string {
	if r == Writer {
		return "W"
	}
	return "R"
}

// Phase is where an agent is in its lock/act/unlock cycle.
type Phase int32

const (
	// Resting is outside the monitor.
	Resting Phase = iota
	// Waiting has asked for the lock.
	Waiting
	// Acting holds the lock.
	Acting
)

// Agent is one reader or writer goroutine's state.
type Agent struct {
	ID   int
	Role Role

	rng   *rand.Rand // owned by the agent goroutine
	count atomic.Int64
	phase atomic.Int32
	last  atomic.Pointer[tsgl.ColorFloat]
	item  atomic.Int32
}

func newAgent(id int, role Role, seed uint64) *Agent {
	a := &Agent{
		ID:   id,
		Role: role,
		rng:  rand.New(rand.NewPCG(seed, uint64(role)<<32|uint64(id))),
	}
	a.item.Store(-1)
	return a
}

// Count returns the number of completed cycles.
func (a *Agent) Count() int64 { return a.count.Load() }

// Phase returns the agent's current phase.
func (a *Agent) Phase() Phase { return Phase(a.phase.Load()) }

// Last returns the color most recently read or written and the item it
// belongs to. ok is false before the first cycle.
func (a *Agent) Last() (c tsgl.ColorFloat, item int, ok bool) {
	p := a.last.Load()
	if p == nil {
		return tsgl.ColorFloat{}, -1, false
	}
	return *p, int(a.item.Load()), true
}

// cycle runs one lock/act/unlock round. dwell sleeps while the lock is
// held; gate blocks while the simulation is paused.
func (a *Agent) cycle(ctx context.Context, db *Database, mon Monitor, dwell func(), gate *gate) error {
	a.phase.Store(int32(Waiting))
	if a.Role == Writer {
		mon.WriteLock()
	} else {
		mon.ReadLock()
	}
	a.phase.Store(int32(Acting))

	i := a.rng.IntN(db.Len())
	var c tsgl.ColorFloat
	if a.Role == Writer {
		c = tsgl.ColorInt(a.rng.IntN(256), a.rng.IntN(256), a.rng.IntN(256), 255)
		db.Write(i, c)
	} else {
		c = db.Read(i)
	}
	a.last.Store(&c)
	a.item.Store(int32(i))
	dwell()
	err := gate.wait(ctx)

	a.count.Add(1)
	if a.Role == Writer {
		mon.WriteUnlock()
	} else {
		mon.ReadUnlock()
	}
	a.phase.Store(int32(Resting))
	return err
}

// gate blocks agents while the simulation is paused.
type gate struct {
	mu sync.Mutex
	ch chan struct{} // nil while open
}

func (g *gate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ch == nil {
		g.ch = make(chan struct{})
	}
}

func (g *gate) open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ch != nil {
		close(g.ch)
		g.ch = nil
	}
}

func (g *gate) closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ch != nil
}

func (g *gate) wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
