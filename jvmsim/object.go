package jvmsim

import (
	"sync"

	"github.com/wippyai/jbind"
)

// fieldValue holds a primitive or, for object fields, a heap pointer.
// Heap fields never hold references, which are attachment scoped.
type fieldValue struct {
	prim jbind.Value
	obj  *Obj
}

// Obj is an object on the simulated heap.
type Obj struct {
	class  *Class
	fields map[*Field]fieldValue
	mu     sync.Mutex
	id     int32

	// Native holds the host payload of built-in types: the Go string of a
	// java/lang/String, the *Class of a java/lang/Class mirror, the message of
	// a Throwable.
	Native any
}

// Class returns the runtime class of o.
func (o *Obj) Class() *Class {
	return o.class
}

// IdentityHash returns a hash stable for the lifetime of o.
func (o *Obj) IdentityHash() int32 {
	return o.id
}

// Get reads a primitive instance field by name.
func (o *Obj) Get(name string) (jbind.Value, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for f, v := range o.fields {
		if f.Name == name && f.Kind != jbind.KindObject {
			return v.prim, true
		}
	}
	return jbind.Value{}, false
}

// Set writes a primitive instance field by name.
func (o *Obj) Set(name string, v jbind.Value) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for f := range o.fields {
		if f.Name == name && f.Kind == v.Kind {
			o.fields[f] = fieldValue{prim: v}
			return true
		}
	}
	return false
}

// GetObj reads an object instance field by name.
func (o *Obj) GetObj(name string) (*Obj, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for f, v := range o.fields {
		if f.Name == name && f.Kind == jbind.KindObject {
			return v.obj, true
		}
	}
	return nil, false
}

// SetObj writes an object instance field by name.
func (o *Obj) SetObj(name string, v *Obj) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for f := range o.fields {
		if f.Name == name && f.Kind == jbind.KindObject {
			o.fields[f] = fieldValue{obj: v}
			return true
		}
	}
	return false
}

func (o *Obj) load(f *Field) fieldValue {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fields[f]
}

func (o *Obj) store(f *Field, v fieldValue) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[f] = v
}

// zeroValue returns the default value of a field of kind k.
func zeroValue(k jbind.Kind) jbind.Value {
	switch k {
	case jbind.KindBoolean:
		return jbind.BoolValue(false)
	case jbind.KindByte:
		return jbind.ByteValue(0)
	case jbind.KindChar:
		return jbind.CharValue(0)
	case jbind.KindShort:
		return jbind.ShortValue(0)
	case jbind.KindInt:
		return jbind.IntValue(0)
	case jbind.KindLong:
		return jbind.LongValue(0)
	case jbind.KindFloat:
		return jbind.FloatValue(0)
	case jbind.KindDouble:
		return jbind.DoubleValue(0)
	default:
		return jbind.ObjectValue(jbind.Null)
	}
}
