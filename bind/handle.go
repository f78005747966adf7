package bind

import (
	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/ref"
)

// Handle is the single field of every proxy type. The zero Handle is null.
type Handle struct {
	r ref.Ref
}

// Proxy is satisfied by every generated proxy type: a struct whose only
// field is an embedded Handle.
type Proxy interface {
	~struct{ Handle }
}

// Referent is anything carrying a foreign reference: a Handle or a proxy.
type Referent interface {
	Raw() jbind.Object
	Err() error
}

// NewHandle wraps r. A nil *ref.Local or *ref.Global yields the null Handle.
func NewHandle(r ref.Ref) Handle {
	switch v := r.(type) {
	case *ref.Global:
		if v == nil {
			return Handle{}
		}
	case *ref.Local:
		if v == nil {
			return Handle{}
		}
	}
	return Handle{r: r}
}

// Wrap builds a proxy of type P around h.
func Wrap[P Proxy](h Handle) P {
	return P(struct{ Handle }{h})
}

// HandleOf returns the Handle of a proxy.
func HandleOf[P Proxy](p P) Handle {
	return struct{ Handle }(p).Handle
}

// Raw returns the foreign reference, or jbind.Null for a null or dead handle.
func (h Handle) Raw() jbind.Object {
	if h.r == nil {
		return jbind.Null
	}
	return h.r.Object()
}

// IsNil reports whether h refers to no object.
func (h Handle) IsNil() bool {
	return h.r == nil
}

// Anchored reports whether h survives the scope it was created in.
func (h Handle) Anchored() bool {
	return h.r != nil && h.r.Anchored()
}

// Err reports why the reference can no longer be used. A null handle has no error.
func (h Handle) Err() error {
	if h.r == nil {
		return nil
	}
	return h.r.Err()
}

// Ref returns the underlying reference, or nil for a null handle.
func (h Handle) Ref() ref.Ref {
	return h.r
}

// Release gives up this holder's ownership. Releasing a null handle is a no-op.
func (h Handle) Release() {
	if h.r != nil {
		h.r.Release()
	}
}

// Clone returns another holder of the same object. Anchored handles gain a
// holder that must be released on its own; locals are shared as is.
func (h Handle) Clone() Handle {
	if g, ok := h.r.(*ref.Global); ok {
		return Handle{r: g.Clone()}
	}
	return h
}

// ClassOf returns an anchored handle to the runtime class of r.
func ClassOf(env jbind.Env, r Referent) (Handle, error) {
	obj, err := receiver(r, "java/lang/Object", "getClass")
	if err != nil {
		return Handle{}, err
	}
	cls, err := env.GetObjectClass(obj)
	if err != nil {
		return Handle{}, errors.Wrap(errors.PhaseCall, errors.KindInvalidInput, err, "query runtime class")
	}
	return Anchor(env, jbind.ObjectValue(cls))
}

// SameObject reports whether a and b denote the same foreign object.
func SameObject(env jbind.Env, a, b Referent) bool {
	return env.IsSameObject(raw(a), raw(b))
}

func raw(r Referent) jbind.Object {
	if r == nil {
		return jbind.Null
	}
	return r.Raw()
}

// receiver validates r as the target of an instance operation.
func receiver(r Referent, class, member string) (jbind.Object, error) {
	if r == nil {
		return jbind.Null, errors.NilReference(class, member)
	}
	if err := r.Err(); err != nil {
		return jbind.Null, err
	}
	obj := r.Raw()
	if obj == jbind.Null {
		return jbind.Null, errors.NilReference(class, member)
	}
	return obj, nil
}
