package cache

import (
	"sync/atomic"

	"github.com/wippyai/jbind"
)

type entry[T any] struct {
	id         T
	attachment jbind.AttachmentID
}

// Slot caches one resolved identifier per attachment.
// The zero value is an empty slot ready for use.
type Slot[T any] struct {
	cur    atomic.Pointer[entry[T]]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Load returns the cached id if it was resolved under att.
func (s *Slot[T]) Load(att jbind.AttachmentID) (T, bool) {
	e := s.cur.Load()
	if e == nil || e.attachment != att {
		var zero T
		return zero, false
	}
	return e.id, true
}

// Store overwrites the slot with an id resolved under att.
func (s *Slot[T]) Store(att jbind.AttachmentID, id T) {
	s.cur.Store(&entry[T]{attachment: att, id: id})
}

// Resolve returns the id for att, calling resolve on a miss.
// The slot is only written when resolve succeeds.
func (s *Slot[T]) Resolve(att jbind.AttachmentID, resolve func() (T, error)) (T, error) {
	if id, ok := s.Load(att); ok {
		s.hits.Add(1)
		return id, nil
	}

	s.misses.Add(1)
	id, err := resolve()
	if err != nil {
		var zero T
		return zero, err
	}
	s.Store(att, id)
	return id, nil
}

// Cached reports whether the slot holds an id resolved under att.
func (s *Slot[T]) Cached(att jbind.AttachmentID) bool {
	_, ok := s.Load(att)
	return ok
}

// Empty reports whether the slot has never been populated (or was reset).
func (s *Slot[T]) Empty() bool {
	return s.cur.Load() == nil
}

// Attachment returns the identity the slot currently belongs to, or zero.
func (s *Slot[T]) Attachment() jbind.AttachmentID {
	if e := s.cur.Load(); e != nil {
		return e.attachment
	}
	return 0
}

// Reset empties the slot.
func (s *Slot[T]) Reset() {
	s.cur.Store(nil)
}

// Stats is a snapshot of slot usage.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Stats returns the hit and miss counts since creation.
func (s *Slot[T]) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
}
