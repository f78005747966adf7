package reftable

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("reference table closed")
	ErrFull   = errors.New("reference table full")
)

// Slab is a generation-checked slot allocator.
type Slab[T any] struct {
	entries  []slot[T]
	freeList []uint32
	mu       sync.RWMutex
	live     int
	closed   bool
}

type slot[T any] struct {
	value T
	gen   uint32
	valid bool
}

// NewSlab creates an empty slab.
func NewSlab[T any]() *Slab[T] {
	return &Slab[T]{
		entries:  make([]slot[T], 0, 64),
		freeList: make([]uint32, 0, 16),
	}
}

// Create stores a value and returns its handle.
func (s *Slab[T]) Create(value T) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	if n := len(s.freeList); n > 0 {
		idx := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		e := &s.entries[idx]
		e.value = value
		e.valid = true
		s.live++
		return makeHandle(idx, e.gen), nil
	}

	if len(s.entries) >= indexMask {
		return 0, ErrFull
	}

	s.entries = append(s.entries, slot[T]{value: value, valid: true})
	s.live++
	return makeHandle(uint32(len(s.entries)-1), 0), nil
}

// lookup returns the live slot for h. Callers hold s.mu.
func (s *Slab[T]) lookup(h Handle) *slot[T] {
	idx := h.index()
	if idx < 0 || idx >= len(s.entries) {
		return nil
	}
	e := &s.entries[idx]
	if !e.valid || e.gen&genMask != h.generation() {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (s *Slab[T]) Get(h Handle) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e := s.lookup(h); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Delete removes a value and returns it. Returns false if h is stale or invalid.
func (s *Slab[T]) Delete(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e := s.lookup(h)
	if e == nil {
		return zero, false
	}

	value := e.value
	e.value = zero
	e.valid = false
	e.gen++
	s.live--
	s.freeList = append(s.freeList, uint32(h.index()))
	return value, true
}

// Len returns the number of live values.
func (s *Slab[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// Each iterates over all live values.
func (s *Slab[T]) Each(fn func(Handle, T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.valid {
			if !fn(makeHandle(uint32(i), e.gen), e.value) {
				break
			}
		}
	}
}

// Close marks the slab closed and returns the values still live.
func (s *Slab[T]) Close() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var remaining []T
	for i := range s.entries {
		if s.entries[i].valid {
			remaining = append(remaining, s.entries[i].value)
		}
	}
	s.entries = nil
	s.freeList = nil
	s.live = 0
	return remaining
}
