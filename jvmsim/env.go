package jvmsim

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/reftable"
)

// Env is one attachment to a VM. It implements jbind.Env.
//
// Class references, method IDs and field IDs carry the attachment identity
// and are rejected by any other attachment. Local references die with
// Detach.
type Env struct {
	vm       *VM
	locals   *reftable.Table[*Obj]
	id       jbind.AttachmentID
	detached atomic.Bool
}

var _ jbind.Env = (*Env)(nil)

// AttachmentID implements jbind.Env.
func (e *Env) AttachmentID() jbind.AttachmentID {
	return e.id
}

// VM implements jbind.Env.
func (e *Env) VM() jbind.VM {
	return e.vm
}

// Runtime returns the simulated runtime of e.
func (e *Env) Runtime() *VM {
	return e.vm
}

// Detach ends the attachment and invalidates its local references.
func (e *Env) Detach() {
	if e.detached.Swap(true) {
		return
	}
	e.locals.Close()
}

// LocalRefs returns the number of live local references.
func (e *Env) LocalRefs() int {
	return e.locals.Len()
}

func (e *Env) checkAttached() error {
	if e.detached.Load() {
		return fmt.Errorf("attachment %d is detached", e.id)
	}
	return nil
}

func (e *Env) qualify(index int) uint64 {
	return uint64(e.id)<<32 | uint64(index+1)
}

func (e *Env) unqualify(raw uint64, what string) (int, error) {
	if att := jbind.AttachmentID(raw >> 32); att != e.id {
		return 0, fmt.Errorf("%s %#x belongs to attachment %d, used on %d", what, raw, att, e.id)
	}
	return int(uint32(raw)) - 1, nil
}

func (e *Env) class(c jbind.Class) (*Class, error) {
	idx, err := e.unqualify(uint64(c), "class")
	if err != nil {
		return nil, err
	}
	cls, ok := e.vm.classAt(idx)
	if !ok {
		return nil, fmt.Errorf("invalid class %#x", uint64(c))
	}
	return cls, nil
}

func (e *Env) method(id jbind.MethodID) (*Method, error) {
	idx, err := e.unqualify(uint64(id), "method id")
	if err != nil {
		return nil, err
	}
	m, ok := e.vm.methodAt(idx)
	if !ok {
		return nil, fmt.Errorf("invalid method id %#x", uint64(id))
	}
	return m, nil
}

func (e *Env) field(id jbind.FieldID) (*Field, error) {
	idx, err := e.unqualify(uint64(id), "field id")
	if err != nil {
		return nil, err
	}
	f, ok := e.vm.fieldAt(idx)
	if !ok {
		return nil, fmt.Errorf("invalid field id %#x", uint64(id))
	}
	return f, nil
}

// NewLocal creates a local reference to o. A nil o yields Null.
func (e *Env) NewLocal(o *Obj) jbind.Object {
	if o == nil {
		return jbind.Null
	}
	h := e.locals.Insert(o)
	if h == 0 {
		return jbind.Null
	}
	return jbind.Object(e.qualify(int(h) - 1))
}

// Deref returns the heap object behind a local or global reference.
// Null yields nil without error.
func (e *Env) Deref(obj jbind.Object) (*Obj, error) {
	if obj == jbind.Null {
		return nil, nil
	}
	raw := uint64(obj)
	if raw&globalBit != 0 {
		o, ok := e.vm.globals.Get(reftable.Handle(uint32(raw)))
		if !ok {
			return nil, fmt.Errorf("stale global reference %#x", raw)
		}
		return o, nil
	}
	idx, err := e.unqualify(raw, "local reference")
	if err != nil {
		return nil, err
	}
	o, ok := e.locals.Get(reftable.Handle(idx + 1))
	if !ok {
		return nil, fmt.Errorf("stale local reference %#x", raw)
	}
	return o, nil
}

// receiver dereferences obj and throws NullPointerException for null.
func (e *Env) receiver(obj jbind.Object) (*Obj, error) {
	o, err := e.Deref(obj)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, e.Throw("java/lang/NullPointerException", "")
	}
	return o, nil
}

// Throw builds the exception a method body returns to raise class.
// The thrown object is reachable through a local reference.
func (e *Env) Throw(class, message string) error {
	exc := &jbind.Exception{
		Class:   strings.ReplaceAll(class, "/", "."),
		Message: message,
	}
	if c, ok := e.vm.Class(class); ok {
		o := e.vm.alloc(c)
		if message != "" {
			o.Native = message
		}
		exc.Object = e.NewLocal(o)
	}
	return exc
}

// String creates a java/lang/String and returns the heap object.
func (e *Env) String(s string) (*Obj, error) {
	c, ok := e.vm.Class(stringClassName)
	if !ok {
		return nil, fmt.Errorf("%s not defined", stringClassName)
	}
	o := e.vm.alloc(c)
	o.Native = s
	return o, nil
}

// FindClass implements jbind.Env.
func (e *Env) FindClass(name string) (jbind.Class, error) {
	e.vm.stats.findClass.Add(1)
	if err := e.checkAttached(); err != nil {
		return 0, err
	}
	c, ok := e.vm.Class(name)
	if !ok {
		return 0, fmt.Errorf("%w: class %s", jbind.ErrNotFound, name)
	}
	return jbind.Class(e.qualify(c.index)), nil
}

// GetMethodID implements jbind.Env. Constructors are not inherited.
func (e *Env) GetMethodID(class jbind.Class, name, signature string) (jbind.MethodID, error) {
	e.vm.stats.getMethodID.Add(1)
	c, err := e.class(class)
	if err != nil {
		return 0, err
	}
	key := memberKey(name, signature)
	var m *Method
	if name == "<init>" {
		m = c.methods[key]
	} else {
		m = c.findMethod(key, false)
	}
	if m == nil {
		return 0, fmt.Errorf("%w: method %s.%s%s", jbind.ErrNotFound, c.Name, name, signature)
	}
	return jbind.MethodID(e.qualify(m.index)), nil
}

// GetStaticMethodID implements jbind.Env.
func (e *Env) GetStaticMethodID(class jbind.Class, name, signature string) (jbind.MethodID, error) {
	e.vm.stats.getStaticMethodID.Add(1)
	c, err := e.class(class)
	if err != nil {
		return 0, err
	}
	m := c.findMethod(memberKey(name, signature), true)
	if m == nil {
		return 0, fmt.Errorf("%w: static method %s.%s%s", jbind.ErrNotFound, c.Name, name, signature)
	}
	return jbind.MethodID(e.qualify(m.index)), nil
}

// GetFieldID implements jbind.Env.
func (e *Env) GetFieldID(class jbind.Class, name, signature string) (jbind.FieldID, error) {
	e.vm.stats.getFieldID.Add(1)
	c, err := e.class(class)
	if err != nil {
		return 0, err
	}
	f := c.findField(memberKey(name, signature))
	if f == nil {
		return 0, fmt.Errorf("%w: field %s.%s %s", jbind.ErrNotFound, c.Name, name, signature)
	}
	return jbind.FieldID(e.qualify(f.index)), nil
}

// CallMethod implements jbind.Env with virtual dispatch on the receiver.
func (e *Env) CallMethod(obj jbind.Object, method jbind.MethodID, ret jbind.Kind, args []jbind.Value) (jbind.Value, error) {
	e.vm.stats.calls.Add(1)
	if err := e.checkAttached(); err != nil {
		return jbind.Void, err
	}
	m, err := e.method(method)
	if err != nil {
		return jbind.Void, err
	}
	if m.Static {
		return jbind.Void, fmt.Errorf("%s.%s%s is static", m.Class.Name, m.Name, m.Sig)
	}
	this, err := e.receiver(obj)
	if err != nil {
		return jbind.Void, err
	}
	if !this.class.IsSubclassOf(m.Class) {
		return jbind.Void, fmt.Errorf("receiver of class %s is not a %s", this.class.Name, m.Class.Name)
	}
	impl := m
	if m.Name != "<init>" {
		impl = this.class.implementation(memberKey(m.Name, m.Sig))
	}
	if impl == nil || impl.Fn == nil {
		return jbind.Void, e.Throw("java/lang/AbstractMethodError", m.Class.Name+"."+m.Name+m.Sig)
	}
	return e.invoke(impl, this, ret, args)
}

// CallStaticMethod implements jbind.Env.
func (e *Env) CallStaticMethod(class jbind.Class, method jbind.MethodID, ret jbind.Kind, args []jbind.Value) (jbind.Value, error) {
	e.vm.stats.calls.Add(1)
	if err := e.checkAttached(); err != nil {
		return jbind.Void, err
	}
	c, err := e.class(class)
	if err != nil {
		return jbind.Void, err
	}
	m, err := e.method(method)
	if err != nil {
		return jbind.Void, err
	}
	if !m.Static {
		return jbind.Void, fmt.Errorf("%s.%s%s is not static", m.Class.Name, m.Name, m.Sig)
	}
	if !c.IsSubclassOf(m.Class) {
		return jbind.Void, fmt.Errorf("method %s.%s does not belong to %s", m.Class.Name, m.Name, c.Name)
	}
	return e.invoke(m, nil, ret, args)
}

// NewObject implements jbind.Env.
func (e *Env) NewObject(class jbind.Class, ctor jbind.MethodID, args []jbind.Value) (jbind.Object, error) {
	e.vm.stats.newObject.Add(1)
	if err := e.checkAttached(); err != nil {
		return jbind.Null, err
	}
	c, err := e.class(class)
	if err != nil {
		return jbind.Null, err
	}
	m, err := e.method(ctor)
	if err != nil {
		return jbind.Null, err
	}
	if m.Name != "<init>" || m.Class != c {
		return jbind.Null, fmt.Errorf("%s.%s%s is not a constructor of %s", m.Class.Name, m.Name, m.Sig, c.Name)
	}
	if c.Interface {
		return jbind.Null, e.Throw("java/lang/InstantiationException", c.Name)
	}
	o := e.vm.alloc(c)
	if m.Fn != nil {
		if _, err := e.invoke(m, o, jbind.KindVoid, args); err != nil {
			return jbind.Null, err
		}
	}
	return e.NewLocal(o), nil
}

func (e *Env) invoke(m *Method, this *Obj, ret jbind.Kind, args []jbind.Value) (jbind.Value, error) {
	if ret != m.ret {
		return jbind.Void, fmt.Errorf("%s.%s%s returns %s, called as %s", m.Class.Name, m.Name, m.Sig, m.ret, ret)
	}
	if len(args) != len(m.params) {
		return jbind.Void, fmt.Errorf("%s.%s%s takes %d arguments, got %d", m.Class.Name, m.Name, m.Sig, len(m.params), len(args))
	}
	for i, a := range args {
		if a.Kind != m.params[i] {
			return jbind.Void, fmt.Errorf("%s.%s%s argument %d: expected %s, got %s", m.Class.Name, m.Name, m.Sig, i, m.params[i], a.Kind)
		}
	}

	v, err := m.Fn(e, this, args)
	if err != nil {
		if exc, ok := err.(*jbind.Exception); ok {
			e.vm.log.Debug("exception thrown",
				zap.String("class", exc.Class),
				zap.String("method", m.Class.Name+"."+m.Name+m.Sig),
				zap.String("message", exc.Message))
		}
		return jbind.Void, err
	}
	if m.ret == jbind.KindVoid {
		return jbind.Void, nil
	}
	if v.Kind != m.ret {
		return jbind.Void, fmt.Errorf("%s.%s%s body returned %s", m.Class.Name, m.Name, m.Sig, v.Kind)
	}
	return v, nil
}

func (e *Env) instanceField(obj jbind.Object, id jbind.FieldID, kind jbind.Kind) (*Obj, *Field, error) {
	if err := e.checkAttached(); err != nil {
		return nil, nil, err
	}
	f, err := e.field(id)
	if err != nil {
		return nil, nil, err
	}
	if f.Kind != kind {
		return nil, nil, fmt.Errorf("field %s.%s is %s, accessed as %s", f.Class.Name, f.Name, f.Kind, kind)
	}
	o, err := e.receiver(obj)
	if err != nil {
		return nil, nil, err
	}
	if !o.class.IsSubclassOf(f.Class) {
		return nil, nil, fmt.Errorf("object of class %s has no field %s.%s", o.class.Name, f.Class.Name, f.Name)
	}
	return o, f, nil
}

// GetField implements jbind.Env.
func (e *Env) GetField(obj jbind.Object, field jbind.FieldID, kind jbind.Kind) (jbind.Value, error) {
	o, f, err := e.instanceField(obj, field, kind)
	if err != nil {
		return jbind.Void, err
	}
	v := o.load(f)
	if kind == jbind.KindObject {
		return jbind.ObjectValue(e.NewLocal(v.obj)), nil
	}
	return v.prim, nil
}

// SetField implements jbind.Env.
func (e *Env) SetField(obj jbind.Object, field jbind.FieldID, kind jbind.Kind, value jbind.Value) error {
	if value.Kind != kind {
		return fmt.Errorf("set field: value is %s, expected %s", value.Kind, kind)
	}
	o, f, err := e.instanceField(obj, field, kind)
	if err != nil {
		return err
	}
	if kind != jbind.KindObject {
		o.store(f, fieldValue{prim: value})
		return nil
	}
	target, err := e.Deref(value.Object())
	if err != nil {
		return err
	}
	o.store(f, fieldValue{obj: target})
	return nil
}

// NewGlobalRef implements jbind.Env.
func (e *Env) NewGlobalRef(obj jbind.Object) (jbind.Object, error) {
	o, err := e.Deref(obj)
	if err != nil {
		return jbind.Null, err
	}
	if o == nil {
		return jbind.Null, nil
	}
	h := e.vm.globals.Insert(o)
	if h == 0 {
		return jbind.Null, fmt.Errorf("global reference table exhausted")
	}
	e.vm.stats.newGlobalRef.Add(1)
	return jbind.Object(globalBit | uint64(h)), nil
}

// DeleteLocalRef implements jbind.Env. Globals and foreign locals are ignored.
func (e *Env) DeleteLocalRef(obj jbind.Object) {
	raw := uint64(obj)
	if obj == jbind.Null || raw&globalBit != 0 {
		return
	}
	idx, err := e.unqualify(raw, "local reference")
	if err != nil {
		e.vm.log.Warn("delete of foreign local reference", zap.Error(err))
		return
	}
	e.locals.Delete(reftable.Handle(idx + 1))
}

// GetObjectClass implements jbind.Env.
func (e *Env) GetObjectClass(obj jbind.Object) (jbind.Object, error) {
	o, err := e.receiver(obj)
	if err != nil {
		return jbind.Null, err
	}
	m, err := e.vm.mirror(o.class)
	if err != nil {
		return jbind.Null, err
	}
	return e.NewLocal(m), nil
}

// IsSameObject implements jbind.Env.
func (e *Env) IsSameObject(a, b jbind.Object) bool {
	oa, errA := e.Deref(a)
	ob, errB := e.Deref(b)
	if errA != nil || errB != nil {
		return false
	}
	return oa == ob
}

// NewStringUTF implements jbind.Env.
func (e *Env) NewStringUTF(s string) (jbind.Object, error) {
	if err := e.checkAttached(); err != nil {
		return jbind.Null, err
	}
	o, err := e.String(s)
	if err != nil {
		return jbind.Null, err
	}
	return e.NewLocal(o), nil
}

// GetStringUTF implements jbind.Env.
func (e *Env) GetStringUTF(obj jbind.Object) (string, error) {
	o, err := e.receiver(obj)
	if err != nil {
		return "", err
	}
	s, ok := o.Native.(string)
	if !ok || o.class.Name != stringClassName {
		return "", fmt.Errorf("object of class %s is not a string", o.class.Name)
	}
	return s, nil
}
