// Package sequence orders overlapping requests for the same view so that a
// slow response can never overwrite the result of a newer one.
package sequence

import (
	"sync"
	"time"
)

const (
	defaultIdleTTL    = 30 * time.Minute
	defaultMaxEntries = 10000
)

// Ticket identifies one request for a view.
type Ticket struct {
	Key string
	N   uint64
}

type entry[T any] struct {
	issued    uint64
	committed uint64
	value     T
	hasValue  bool
	touched   time.Time
}

// Sequencer hands out monotonic tickets per key and only commits results
// whose ticket is still the newest one issued for that key.
type Sequencer[T any] struct {
	mu         sync.Mutex
	entries    map[string]*entry[T]
	idleTTL    time.Duration
	maxEntries int
	now        func() time.Time
}

func New[T any]() *Sequencer[T] {
	return &Sequencer[T]{
		entries:    make(map[string]*entry[T]),
		idleTTL:    defaultIdleTTL,
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
}

// Issue returns a ticket newer than every ticket previously issued for key.
func (s *Sequencer[T]) Issue(key string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.maxEntries {
		s.pruneLocked()
	}

	e, ok := s.entries[key]
	if !ok {
		e = &entry[T]{}
		s.entries[key] = e
	}

	e.issued++
	e.touched = s.now()

	return Ticket{Key: key, N: e.issued}
}

// Commit stores value when t is still the newest ticket for its key. It
// returns the value now current for the key and whether t was superseded.
// A superseded ticket leaves the committed value untouched.
func (s *Sequencer[T]) Commit(t Ticket, value T) (current T, stale bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[t.Key]
	if !ok || t.N != e.issued {
		if ok && e.hasValue {
			return e.value, true
		}

		return current, true
	}

	e.committed = t.N
	e.value = value
	e.hasValue = true
	e.touched = s.now()

	return value, false
}

// Latest returns the last committed value for key.
func (s *Sequencer[T]) Latest(key string) (value T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries[key]
	if !found || !e.hasValue {
		return value, false
	}

	return e.value, true
}

func (s *Sequencer[T]) pruneLocked() {
	cutoff := s.now().Add(-s.idleTTL)

	for key, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, key)
		}
	}
}
