package jvmsim

import "sync/atomic"

type counters struct {
	findClass         atomic.Int64
	getMethodID       atomic.Int64
	getStaticMethodID atomic.Int64
	getFieldID        atomic.Int64
	calls             atomic.Int64
	newObject         atomic.Int64
	newGlobalRef      atomic.Int64
	deleteGlobalRef   atomic.Int64
}

// Stats is a snapshot of runtime activity.
type Stats struct {
	FindClass         int64
	GetMethodID       int64
	GetStaticMethodID int64
	GetFieldID        int64
	Calls             int64
	NewObject         int64
	NewGlobalRef      int64
	DeleteGlobalRef   int64
	LiveGlobals       int
}

// Lookups returns the number of class and member resolutions.
func (s Stats) Lookups() int64 {
	return s.FindClass + s.GetMethodID + s.GetStaticMethodID + s.GetFieldID
}

// Stats returns a snapshot of the runtime counters.
func (vm *VM) Stats() Stats {
	return Stats{
		FindClass:         vm.stats.findClass.Load(),
		GetMethodID:       vm.stats.getMethodID.Load(),
		GetStaticMethodID: vm.stats.getStaticMethodID.Load(),
		GetFieldID:        vm.stats.getFieldID.Load(),
		Calls:             vm.stats.calls.Load(),
		NewObject:         vm.stats.newObject.Load(),
		NewGlobalRef:      vm.stats.newGlobalRef.Load(),
		DeleteGlobalRef:   vm.stats.deleteGlobalRef.Load(),
		LiveGlobals:       vm.globals.Len(),
	}
}
