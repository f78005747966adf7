package ref

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
)

// anchor is the foreign global reference shared by all holders.
type anchor struct {
	vm      jbind.VM
	obj     jbind.Object
	holders atomic.Int64
}

// Global is one holder of an anchored reference.
type Global struct {
	a        *anchor
	released atomic.Bool
}

// NewGlobal adopts an anchor created with Env.NewGlobalRef. The returned
// holder is the only one; it must be released exactly once.
func NewGlobal(vm jbind.VM, obj jbind.Object) *Global {
	a := &anchor{vm: vm, obj: obj}
	a.holders.Store(1)
	return &Global{a: a}
}

// Object returns the anchored reference, or jbind.Null after Release.
func (g *Global) Object() jbind.Object {
	if g == nil || g.released.Load() {
		return jbind.Null
	}
	return g.a.obj
}

// Err reports use after release.
func (g *Global) Err() error {
	if g == nil {
		return errors.Released("nil global reference")
	}
	if g.released.Load() {
		return errors.Released("global reference used after release")
	}
	return nil
}

// Anchored is always true for globals.
func (g *Global) Anchored() bool {
	return true
}

// Clone adds a holder of the same anchor. Cloning a released holder
// returns a released holder.
func (g *Global) Clone() *Global {
	if g == nil {
		return nil
	}
	if g.released.Load() {
		c := &Global{a: g.a}
		c.released.Store(true)
		return c
	}
	g.a.holders.Add(1)
	return &Global{a: g.a}
}

// Holders returns the number of holders that have not released.
func (g *Global) Holders() int64 {
	if g == nil {
		return 0
	}
	return g.a.holders.Load()
}

// Release drops this holder. The anchor is deleted when the last holder
// releases. Calling Release twice on the same holder is a no-op.
func (g *Global) Release() {
	if g == nil || !g.released.CompareAndSwap(false, true) {
		return
	}
	if g.a.holders.Add(-1) != 0 {
		return
	}
	if err := g.a.vm.DeleteGlobalRef(g.a.obj); err != nil {
		Logger().Warn("release global reference",
			zap.Uintptr("object", uintptr(g.a.obj)),
			zap.Error(err))
	}
}
