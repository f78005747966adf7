// Package reftable provides the reference tables behind jvmsim.
//
// A foreign runtime hands out object references as opaque integers. This
// package maps those integers to host values and detects use of a reference
// after it was deleted:
//
//	locals := reftable.New[*Obj](reftable.Local)
//
//	// Insert a value, get a handle
//	h := locals.Insert(obj)
//
//	// Retrieve value by handle
//	obj, ok := locals.Get(h)
//
//	// Delete the reference
//	obj, ok = locals.Delete(h)
//
// # Handles
//
// A Handle packs a slot index with a generation counter. Deleting a
// reference bumps the generation of its slot, so a stale handle never aliases
// a later reference that reuses the slot. Handle 0 is reserved and always invalid.
//
// # Observers
//
// Register observers to track reference lifecycle events:
//
//	table.Subscribe(observer)
//
//	func (o *counter) OnRefEvent(e reftable.Event) {
//	    switch e.Type {
//	    case reftable.EventCreated:
//	    case reftable.EventDeleted:
//	    }
//	}
//
// # Memory Management
//
// Values are not garbage collected. The owner must Delete each reference or
// Close the table; Close deletes all remaining references and notifies
// observers for each.
package reftable
