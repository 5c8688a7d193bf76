package readerwriter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/tsgl"
)

// Config describes a simulation.
type Config struct {
	Readers int
	Writers int
	Items   int
	// Dwell is how long an agent holds the lock. Zero holds it for one
	// canvas frame.
	Dwell time.Duration
	// Rest is how long an agent waits between cycles.
	Rest time.Duration
	// Fair selects FairMonitor instead of WriterMonitor.
	Fair bool
	Seed uint64
}

// DefaultConfig returns six readers, two writers and ten items.
func DefaultConfig() Config {
	return Config{Readers: 6, Writers: 2, Items: 10, Dwell: 50 * time.Millisecond, Rest: 20 * time.Millisecond, Seed: 1}
}

// Sim runs the agents over a shared database.
type Sim struct {
	cfg    Config
	can    *tsgl.Canvas
	db     *Database
	mon    Monitor
	agents []*Agent
	gate   gate
}

// New creates a simulation drawing on can. The database is added to the
// canvas render queue.
func New(can *tsgl.Canvas, cfg Config) (*Sim, error) {
	if cfg.Readers < 0 || cfg.Writers < 0 || cfg.Readers+cfg.Writers == 0 {
		return nil, fmt.Errorf("readerwriter: need at least one agent, got %d readers and %d writers",
			cfg.Readers, cfg.Writers)
	}
	if cfg.Items <= 0 {
		cfg.Items = DefaultConfig().Items
	}
	h := float32(can.Height()) / float32(cfg.Items+2)
	db, err := NewDatabase(cfg.Items, 0, float32(can.Width())/4, h, tsgl.Gray)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, can: can, db: db}
	if cfg.Fair {
		s.mon = NewFairMonitor(max(cfg.Readers, 1))
	} else {
		s.mon = NewWriterMonitor()
	}
	for i := range cfg.Writers {
		s.agents = append(s.agents, newAgent(i, Writer, cfg.Seed))
	}
	for i := range cfg.Readers {
		s.agents = append(s.agents, newAgent(i, Reader, cfg.Seed))
	}
	db.AddTo(can)
	return s, nil
}

// Database returns the shared data.
func (s *Sim) Database() *Database { return s.db }

// Monitor returns the lock guarding the database.
func (s *Sim) Monitor() Monitor { return s.mon }

// Agents returns every agent, writers first.
func (s *Sim) Agents() []*Agent { return s.agents }

// Pause stops agents at their next checkpoint while they hold the lock.
func (s *Sim) Pause() { s.gate.close() }

// Resume releases paused agents.
func (s *Sim) Resume() { s.gate.open() }

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool { return s.gate.closed() }

// Totals returns the completed reads and writes.
func (s *Sim) Totals() (reads, writes int64) {
	for _, a := range s.agents {
		if a.Role == Writer {
			writes += a.Count()
		} else {
			reads += a.Count()
		}
	}
	return reads, writes
}

// Run starts every agent and blocks until ctx ends or the canvas closes.
// It returns nil in both cases.
func (s *Sim) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, s.Resume)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-s.can.Done():
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	for _, a := range s.agents {
		g.Go(func() error {
			for ctx.Err() == nil {
				if err := a.cycle(ctx, s.db, s.mon, s.dwell(ctx), &s.gate); err != nil {
					return err
				}
				s.sleep(ctx, s.cfg.Rest)
			}
			return nil
		})
	}
	err := g.Wait()
	reads, writes := s.Totals()
	tsgl.Logger().Info("readerwriter: stopped", "reads", reads, "writes", writes)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (s *Sim) dwell(ctx context.Context) func() {
	return func() {
		if s.cfg.Dwell <= 0 {
			s.can.Sleep()
			return
		}
		s.sleep(ctx, s.cfg.Dwell)
	}
}

func (s *Sim) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Render draws the database and one label per agent: writers on the
// left, readers on the right, each showing its cycle count on the color
// it last touched. Render must run on the canvas owner goroutine.
func (s *Sim) Render() error {
	s.can.Render()
	const size = 14
	w := s.can.Width()
	for _, a := range s.agents {
		x := 10
		if a.Role == Reader {
			x = w - 90
		}
		y := 20 + a.ID*(size+8)
		c, _, ok := a.Last()
		if !ok {
			c = tsgl.Gray
		}
		for dy := -size; dy < 4; dy++ {
			for dx := range 80 {
				s.can.DrawPoint(x+dx-2, y+dy, c)
			}
		}
		label := fmt.Sprintf("%s%d %s %d", a.Role, a.ID, phaseMark(a.Phase()), a.Count())
		if err := s.can.DrawText(x, y, label, size, c.Contrast()); err != nil {
			return err
		}
	}
	return nil
}

func phaseMark(p Phase) string {
	switch p {
	case Waiting:
		return "?"
	case Acting:
		return "*"
	default:
		return "-"
	}
}
