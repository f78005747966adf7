package reftable

import (
	"sync"
)

// Table is a reference table with lifecycle observers.
type Table[T any] struct {
	slab      *Slab[T]
	observers []Observer
	obsMu     sync.RWMutex
	kind      Kind
}

// New creates an empty table of the given kind.
func New[T any](kind Kind) *Table[T] {
	return &Table[T]{
		slab: NewSlab[T](),
		kind: kind,
	}
}

// Kind returns the table kind.
func (t *Table[T]) Kind() Kind {
	return t.kind
}

// Insert adds a value and returns its handle, or 0 if the table is closed or full.
func (t *Table[T]) Insert(value T) Handle {
	h, err := t.slab.Create(value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: h,
		Table:  t.kind,
		Value:  value,
	})
	return h
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(h Handle) (T, bool) {
	return t.slab.Get(h)
}

// Delete drops a reference and returns (value, true) if it was live.
func (t *Table[T]) Delete(h Handle) (T, bool) {
	value, ok := t.slab.Delete(h)
	if !ok {
		return value, false
	}

	t.notify(Event{
		Type:   EventDeleted,
		Handle: h,
		Table:  t.kind,
		Value:  value,
	})
	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live references.
func (t *Table[T]) Len() int {
	return t.slab.Len()
}

// Clear deletes all references.
func (t *Table[T]) Clear() {
	// Collect handles first to avoid holding the slab lock during Delete
	var handles []Handle
	t.slab.Each(func(h Handle, _ T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Delete(h)
	}
}

// Close deletes all references and stops accepting inserts.
func (t *Table[T]) Close() {
	t.Clear()
	t.slab.Close()
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnRefEvent(e)
	}
}
