package ref

import (
	"github.com/wippyai/jbind"
)

// Ref is a reference to a foreign object held by Go code.
type Ref interface {
	// Object returns the raw reference, or jbind.Null once the reference is
	// no longer usable.
	Object() jbind.Object

	// Err reports why the reference is no longer usable, or nil.
	Err() error

	// Anchored reports whether the reference survives its creating scope.
	Anchored() bool

	// Release gives up this holder's ownership.
	Release()
}

// Promote anchors a local reference produced under env and deletes the local.
// A null reference yields a nil Global.
func Promote(env jbind.Env, obj jbind.Object) (*Global, error) {
	if obj == jbind.Null {
		return nil, nil
	}
	anchor, err := env.NewGlobalRef(obj)
	if err != nil {
		return nil, err
	}
	env.DeleteLocalRef(obj)
	return NewGlobal(env.VM(), anchor), nil
}
