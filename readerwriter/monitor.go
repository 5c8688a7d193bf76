// Package readerwriter animates the readers-writers problem: reader and
// writer goroutines share a database of colored rectangles guarded by a
// readers-writer monitor, and a canvas shows who holds the lock.
package readerwriter

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Monitor is a readers-writer lock. Any number of readers may hold it at
// once; a writer holds it alone.
type Monitor interface {
	ReadLock()
	ReadUnlock()
	WriteLock()
	WriteUnlock()
}

// Stats is a snapshot of a monitor's occupancy.
type Stats struct {
	Readers        int // readers holding the lock
	Writers        int // writers holding the lock, 0 or 1
	WaitingReaders int
	WaitingWriters int
}

// WriterMonitor prefers writers: once a writer is waiting, new readers
// block until every waiting writer has had its turn.
type WriterMonitor struct {
	mu             sync.Mutex
	okRead         *sync.Cond
	okWrite        *sync.Cond
	readers        int
	writing        bool
	waitingReaders int
	waitingWriters int
}

// NewWriterMonitor creates a writer-preferring monitor.
func NewWriterMonitor() *WriterMonitor {
	m := &WriterMonitor{}
	m.okRead = sync.NewCond(&m.mu)
	m.okWrite = sync.NewCond(&m.mu)
	return m
}

// ReadLock blocks while a writer holds or waits for the lock.
func (m *WriterMonitor) ReadLock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitingReaders++
	for m.writing || m.waitingWriters > 0 {
		m.okRead.Wait()
	}
	m.waitingReaders--
	m.readers++
}

// ReadUnlock releases a read hold and wakes one writer when the last
// reader leaves.
func (m *WriterMonitor) ReadUnlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readers--
	if m.readers == 0 {
		m.okWrite.Signal()
	}
}

// WriteLock blocks until no reader or writer holds the lock.
func (m *WriterMonitor) WriteLock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitingWriters++
	for m.writing || m.readers > 0 {
		m.okWrite.Wait()
	}
	m.waitingWriters--
	m.writing = true
}

// WriteUnlock hands the lock to the next waiting writer, or to every
// waiting reader when no writer waits.
func (m *WriterMonitor) WriteUnlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writing = false
	if m.waitingWriters > 0 {
		m.okWrite.Signal()
		return
	}
	m.okRead.Broadcast()
}

// Stats returns the current occupancy.
func (m *WriterMonitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Stats{
		Readers:        m.readers,
		WaitingReaders: m.waitingReaders,
		WaitingWriters: m.waitingWriters,
	}
	if m.writing {
		s.Writers = 1
	}
	return s
}

// FairMonitor admits readers and writers in arrival order: a waiting
// writer blocks readers that arrive after it, and readers that arrived
// before a writer go first.
type FairMonitor struct {
	sem *semaphore.Weighted
	max int64
}

// NewFairMonitor creates a fair monitor admitting at most maxReaders
// concurrent readers. maxReaders < 1 is treated as 1.
func NewFairMonitor(maxReaders int) *FairMonitor {
	if maxReaders < 1 {
		maxReaders = 1
	}
	n := int64(maxReaders)
	return &FairMonitor{sem: semaphore.NewWeighted(n), max: n}
}

// ReadLock takes one reader slot.
func (m *FairMonitor) ReadLock() { _ = m.sem.Acquire(context.Background(), 1) }

// ReadUnlock releases a reader slot.
func (m *FairMonitor) ReadUnlock() { m.sem.Release(1) }

// WriteLock takes every reader slot.
func (m *FairMonitor) WriteLock() { _ = m.sem.Acquire(context.Background(), m.max) }

// WriteUnlock releases every reader slot.
func (m *FairMonitor) WriteUnlock() { m.sem.Release(m.max) }
