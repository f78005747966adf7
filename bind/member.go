package bind

import (
	stderrors "errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/cache"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/ref"
	"github.com/wippyai/jbind/sig"
)

// resolveID resolves one member id through slot. Failures are returned as
// resolution errors and leave the slot untouched.
func resolveID[T any](env jbind.Env, slot *cache.Slot[T], class, member, signature string, lookup func() (T, error)) (T, error) {
	att := env.AttachmentID()
	return slot.Resolve(att, func() (T, error) {
		id, err := lookup()
		if err != nil {
			Logger().Debug("member resolution failed",
				zap.String("class", class),
				zap.String("member", member),
				zap.String("signature", signature),
				zap.Uint64("attachment", uint64(att)),
				zap.Error(err))
			return id, errors.MemberNotFound(class, member, signature, err)
		}
		logResolved(class, member, signature, att, slot.Attachment())
		return id, nil
	})
}

// callError classifies a failed foreign call. A thrown object arrives as a
// local reference; it is anchored onto the returned error, which releases it
// once the error is unreachable. Thrown hands out holders of it.
func callError(env jbind.Env, class, member string, err error) error {
	var exc *jbind.Exception
	if !stderrors.As(err, &exc) {
		return errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Class(class).
			Member(member).
			Cause(err).
			Build()
	}

	thrown := *exc
	e := errors.ForeignException(class, member, &thrown)
	if exc.Object == jbind.Null {
		return e
	}
	g, perr := ref.Promote(env, exc.Object)
	if perr != nil {
		env.DeleteLocalRef(exc.Object)
		thrown.Object = jbind.Null
		Logger().Warn("anchor thrown object failed",
			zap.String("class", class),
			zap.String("member", member),
			zap.Error(perr))
		return e
	}
	thrown.Object = g.Object()
	e.Value = NewHandle(g)
	runtime.AddCleanup(e, func(g *ref.Global) { g.Release() }, g)
	return e
}

// Thrown returns a new holder of the exception object carried by err, which
// the caller must release. It reports false when err holds no thrown object.
func Thrown(err error) (Handle, bool) {
	for err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			return Handle{}, false
		}
		if h, ok := e.Value.(Handle); ok && e.Kind == errors.KindForeignException && !h.IsNil() {
			h = h.Clone()
			if h.Err() != nil {
				return Handle{}, false
			}
			return h, true
		}
		err = e.Cause
	}
	return Handle{}, false
}

// wrongAccessor reports a primitive accessor used for a reference or the reverse.
func wrongAccessor(class, member string, declared sig.Type, use string) error {
	return errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
		Class(class).
		Member(member).
		Detail("declared type is %s, use %s", declared, use).
		Build()
}

// Constructor creates instances of a declared class.
type Constructor struct {
	class *Class
	spec  Ctor
	sig   string
	slot  cache.Slot[jbind.MethodID]
}

// Class returns the declaring class.
func (c *Constructor) Class() *Class { return c.class }

// Signature returns the constructor descriptor.
func (c *Constructor) Signature() string { return c.sig }

// Params returns the declared parameters.
func (c *Constructor) Params() []Param { return append([]Param(nil), c.spec.Params...) }

// Cached reports whether the constructor id is cached for att.
func (c *Constructor) Cached(att jbind.AttachmentID) bool { return c.slot.Cached(att) }

// Resolve returns the class reference and constructor id for env.
func (c *Constructor) Resolve(env jbind.Env) (jbind.Class, jbind.MethodID, error) {
	cls, err := c.class.Resolve(env)
	if err != nil {
		return 0, 0, err
	}
	id, err := resolveID(env, &c.slot, c.class.Name(), "<init>", c.sig, func() (jbind.MethodID, error) {
		return env.GetMethodID(cls, "<init>", c.sig)
	})
	return cls, id, err
}

// New constructs an instance and returns it anchored.
func (c *Constructor) New(env jbind.Env, args ...jbind.Value) (Handle, error) {
	if err := checkArgs(c.class.Name(), "<init>", c.spec.Params, args); err != nil {
		return Handle{}, err
	}
	cls, id, err := c.Resolve(env)
	if err != nil {
		return Handle{}, err
	}
	obj, err := env.NewObject(cls, id, args)
	if err != nil {
		return Handle{}, callError(env, c.class.Name(), "<init>", err)
	}
	return Anchor(env, jbind.ObjectValue(obj))
}

// Method is an instance method accessor.
type Method struct {
	class *Class
	spec  MethodSpec
	sig   string
	slot  cache.Slot[jbind.MethodID]
}

// Class returns the declaring class.
func (m *Method) Class() *Class { return m.class }

// Name returns the method name.
func (m *Method) Name() string { return m.spec.Name }

// Signature returns the method descriptor.
func (m *Method) Signature() string { return m.sig }

// Spec returns the declaration of the method.
func (m *Method) Spec() MethodSpec { return cloneMethods([]MethodSpec{m.spec})[0] }

// Cached reports whether the method id is cached for att.
func (m *Method) Cached(att jbind.AttachmentID) bool { return m.slot.Cached(att) }

// Resolve returns the method id for env.
func (m *Method) Resolve(env jbind.Env) (jbind.MethodID, error) {
	cls, err := m.class.Resolve(env)
	if err != nil {
		return 0, err
	}
	return resolveID(env, &m.slot, m.class.Name(), m.spec.Name, m.sig, func() (jbind.MethodID, error) {
		return env.GetMethodID(cls, m.spec.Name, m.sig)
	})
}

func (m *Method) invoke(env jbind.Env, recv Referent, args []jbind.Value) (jbind.Value, error) {
	obj, err := receiver(recv, m.class.Name(), m.spec.Name)
	if err != nil {
		return jbind.Void, err
	}
	if err := checkArgs(m.class.Name(), m.spec.Name, m.spec.Params, args); err != nil {
		return jbind.Void, err
	}
	id, err := m.Resolve(env)
	if err != nil {
		return jbind.Void, err
	}
	v, err := env.CallMethod(obj, id, m.spec.Return.ValueKind(), args)
	if err != nil {
		return jbind.Void, callError(env, m.class.Name(), m.spec.Name, err)
	}
	return v, nil
}

// Call invokes a method returning a primitive or nothing.
func (m *Method) Call(env jbind.Env, recv Referent, args ...jbind.Value) (jbind.Value, error) {
	if m.spec.Return.IsReference() {
		return jbind.Void, wrongAccessor(m.class.Name(), m.spec.Name, m.spec.Return, "CallObject")
	}
	return m.invoke(env, recv, args)
}

// CallObject invokes a method returning a reference. The result is anchored.
func (m *Method) CallObject(env jbind.Env, recv Referent, args ...jbind.Value) (Handle, error) {
	if !m.spec.Return.IsReference() {
		return Handle{}, wrongAccessor(m.class.Name(), m.spec.Name, m.spec.Return, "Call")
	}
	v, err := m.invoke(env, recv, args)
	if err != nil {
		return Handle{}, err
	}
	return Anchor(env, v)
}

// StaticMethod is a static method accessor.
type StaticMethod struct {
	class *Class
	spec  MethodSpec
	sig   string
	slot  cache.Slot[jbind.MethodID]
}

// Class returns the declaring class.
func (m *StaticMethod) Class() *Class { return m.class }

// Name returns the method name.
func (m *StaticMethod) Name() string { return m.spec.Name }

// Signature returns the method descriptor.
func (m *StaticMethod) Signature() string { return m.sig }

// Spec returns the declaration of the method.
func (m *StaticMethod) Spec() MethodSpec { return cloneMethods([]MethodSpec{m.spec})[0] }

// Cached reports whether the method id is cached for att.
func (m *StaticMethod) Cached(att jbind.AttachmentID) bool { return m.slot.Cached(att) }

// Resolve returns the class reference and method id for env.
func (m *StaticMethod) Resolve(env jbind.Env) (jbind.Class, jbind.MethodID, error) {
	cls, err := m.class.Resolve(env)
	if err != nil {
		return 0, 0, err
	}
	id, err := resolveID(env, &m.slot, m.class.Name(), m.spec.Name, m.sig, func() (jbind.MethodID, error) {
		return env.GetStaticMethodID(cls, m.spec.Name, m.sig)
	})
	return cls, id, err
}

func (m *StaticMethod) invoke(env jbind.Env, args []jbind.Value) (jbind.Value, error) {
	if err := checkArgs(m.class.Name(), m.spec.Name, m.spec.Params, args); err != nil {
		return jbind.Void, err
	}
	cls, id, err := m.Resolve(env)
	if err != nil {
		return jbind.Void, err
	}
	v, err := env.CallStaticMethod(cls, id, m.spec.Return.ValueKind(), args)
	if err != nil {
		return jbind.Void, callError(env, m.class.Name(), m.spec.Name, err)
	}
	return v, nil
}

// Call invokes a static method returning a primitive or nothing.
func (m *StaticMethod) Call(env jbind.Env, args ...jbind.Value) (jbind.Value, error) {
	if m.spec.Return.IsReference() {
		return jbind.Void, wrongAccessor(m.class.Name(), m.spec.Name, m.spec.Return, "CallObject")
	}
	return m.invoke(env, args)
}

// CallObject invokes a static method returning a reference. The result is anchored.
func (m *StaticMethod) CallObject(env jbind.Env, args ...jbind.Value) (Handle, error) {
	if !m.spec.Return.IsReference() {
		return Handle{}, wrongAccessor(m.class.Name(), m.spec.Name, m.spec.Return, "Call")
	}
	v, err := m.invoke(env, args)
	if err != nil {
		return Handle{}, err
	}
	return Anchor(env, v)
}

// Field is an instance field accessor. Fields resolve by their declared
// name and exact descriptor.
type Field struct {
	class *Class
	spec  FieldSpec
	sig   string
	slot  cache.Slot[jbind.FieldID]
}

// Class returns the declaring class.
func (f *Field) Class() *Class { return f.class }

// Name returns the field name.
func (f *Field) Name() string { return f.spec.Name }

// Type returns the declared field type.
func (f *Field) Type() sig.Type { return f.spec.Type }

// Signature returns the field descriptor.
func (f *Field) Signature() string { return f.sig }

// Cached reports whether the field id is cached for att.
func (f *Field) Cached(att jbind.AttachmentID) bool { return f.slot.Cached(att) }

// Resolve returns the field id for env.
func (f *Field) Resolve(env jbind.Env) (jbind.FieldID, error) {
	cls, err := f.class.Resolve(env)
	if err != nil {
		return 0, err
	}
	return resolveID(env, &f.slot, f.class.Name(), f.spec.Name, f.sig, func() (jbind.FieldID, error) {
		return env.GetFieldID(cls, f.spec.Name, f.sig)
	})
}

func (f *Field) get(env jbind.Env, recv Referent) (jbind.Value, error) {
	obj, err := receiver(recv, f.class.Name(), f.spec.Name)
	if err != nil {
		return jbind.Void, err
	}
	id, err := f.Resolve(env)
	if err != nil {
		return jbind.Void, err
	}
	v, err := env.GetField(obj, id, f.spec.Type.ValueKind())
	if err != nil {
		return jbind.Void, callError(env, f.class.Name(), f.spec.Name, err)
	}
	return v, nil
}

// Get reads a primitive field.
func (f *Field) Get(env jbind.Env, recv Referent) (jbind.Value, error) {
	if f.spec.Type.IsReference() {
		return jbind.Void, wrongAccessor(f.class.Name(), f.spec.Name, f.spec.Type, "GetObject")
	}
	return f.get(env, recv)
}

// GetObject reads a reference field. The result is anchored.
func (f *Field) GetObject(env jbind.Env, recv Referent) (Handle, error) {
	if !f.spec.Type.IsReference() {
		return Handle{}, wrongAccessor(f.class.Name(), f.spec.Name, f.spec.Type, "Get")
	}
	v, err := f.get(env, recv)
	if err != nil {
		return Handle{}, err
	}
	return Anchor(env, v)
}

// Set writes a field. The value's kind must match the declared type.
func (f *Field) Set(env jbind.Env, recv Referent, v jbind.Value) error {
	obj, err := receiver(recv, f.class.Name(), f.spec.Name)
	if err != nil {
		return err
	}
	if want := f.spec.Type.ValueKind(); v.Kind != want {
		e := errors.TypeMismatch(errors.PhaseMarshal, f.spec.Name, want.String(), v.Kind.String())
		e.Class = f.class.Name()
		return e
	}
	id, err := f.Resolve(env)
	if err != nil {
		return err
	}
	if err := env.SetField(obj, id, f.spec.Type.ValueKind(), v); err != nil {
		return callError(env, f.class.Name(), f.spec.Name, err)
	}
	return nil
}
