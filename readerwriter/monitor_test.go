package readerwriter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// exercise runs readers and writers against m and fails if a writer ever
// overlaps another holder.
func exercise(t *testing.T, m Monitor, readers, writers, rounds int) {
	t.Helper()
	var active, writing atomic.Int32
	var wg sync.WaitGroup
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				m.ReadLock()
				active.Add(1)
				if writing.Load() != 0 {
					t.Error("reader overlapped a writer")
				}
				active.Add(-1)
				m.ReadUnlock()
			}
		}()
	}
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				m.WriteLock()
				if writing.Add(1) != 1 {
					t.Error("two writers held the lock")
				}
				if active.Load() != 0 {
					t.Error("writer overlapped a reader")
				}
				writing.Add(-1)
				m.WriteUnlock()
			}
		}()
	}
	wg.Wait()
}

func TestWriterMonitor_Exclusion(t *testing.T) {
	m := NewWriterMonitor()
	exercise(t, m, 6, 3, 300)
	if s := m.Stats(); s != (Stats{}) {
		t.Errorf("Stats() after run = %+v, want zero", s)
	}
}

func TestFairMonitor_Exclusion(t *testing.T) {
	exercise(t, NewFairMonitor(6), 6, 3, 300)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWriterMonitor_PrefersWriters(t *testing.T) {
	m := NewWriterMonitor()
	m.ReadLock()

	wrote := make(chan struct{})
	release := make(chan struct{})
	go func() {
		m.WriteLock()
		close(wrote)
		<-release
		m.WriteUnlock()
	}()
	waitFor(t, "writer to queue", func() bool { return m.Stats().WaitingWriters == 1 })

	read := make(chan struct{})
	go func() {
		m.ReadLock()
		close(read)
		m.ReadUnlock()
	}()
	waitFor(t, "second reader to queue", func() bool { return m.Stats().WaitingReaders == 1 })
	if s := m.Stats(); s.Readers != 1 {
		t.Fatalf("Readers = %d with a writer waiting, want 1", s.Readers)
	}

	m.ReadUnlock()
	<-wrote
	select {
	case <-read:
		t.Fatal("reader ran while the writer held the lock")
	default:
	}
	if s := m.Stats(); s.Writers != 1 || s.WaitingReaders != 1 {
		t.Errorf("Stats() = %+v, want the writer holding and one reader waiting", s)
	}

	close(release)
	<-read
}

func TestFairMonitor_MinReaders(t *testing.T) {
	m := NewFairMonitor(0)
	m.WriteLock()
	m.WriteUnlock()
	m.ReadLock()
	m.ReadUnlock()
}
