package bind

import (
	stderrors "errors"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/ref"
	"github.com/wippyai/jbind/sig"
)

// Primitive is the set of Go types with a foreign primitive counterpart.
type Primitive interface {
	bool | int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// Prim converts a Go primitive to its tagged value.
func Prim[T Primitive](v T) jbind.Value {
	switch x := any(v).(type) {
	case bool:
		return jbind.BoolValue(x)
	case int8:
		return jbind.ByteValue(x)
	case uint16:
		return jbind.CharValue(x)
	case int16:
		return jbind.ShortValue(x)
	case int32:
		return jbind.IntValue(x)
	case int64:
		return jbind.LongValue(x)
	case float32:
		return jbind.FloatValue(x)
	default:
		return jbind.DoubleValue(any(v).(float64))
	}
}

// Unwrap converts a tagged value to a Go primitive. The value's kind is not
// checked; accessors validate it before unwrapping.
func Unwrap[T Primitive](v jbind.Value) T {
	var out any
	var zero T
	switch any(zero).(type) {
	case bool:
		out = v.Bool()
	case int8:
		out = v.Byte()
	case uint16:
		out = v.Char()
	case int16:
		out = v.Short()
	case int32:
		out = v.Int()
	case int64:
		out = v.Long()
	case float32:
		out = v.Float()
	default:
		out = v.Double()
	}
	return out.(T)
}

// TypeOf returns the foreign type of a Go primitive.
func TypeOf[T Primitive]() sig.Type {
	var zero T
	switch any(zero).(type) {
	case bool:
		return sig.Boolean
	case int8:
		return sig.Byte
	case uint16:
		return sig.Char
	case int16:
		return sig.Short
	case int32:
		return sig.Int
	case int64:
		return sig.Long
	case float32:
		return sig.Float
	default:
		return sig.Double
	}
}

// SignatureOf returns the descriptor of a Go primitive, e.g. "Z" for bool.
func SignatureOf[T Primitive]() string {
	return TypeOf[T]().Signature()
}

// Obj converts a reference to its tagged value. A nil referent is null.
func Obj(r Referent) jbind.Value {
	return jbind.ObjectValue(raw(r))
}

// Arg converts a reference argument to its tagged value. A nil referent or
// null handle is null; a released or stale reference is an error.
func Arg(r Referent) (jbind.Value, error) {
	if err := Live(r); err != nil {
		return jbind.Void, err
	}
	return Obj(r), nil
}

// Live reports the first reference argument that can no longer be used.
// Nil referents and null handles pass as null.
func Live(refs ...Referent) error {
	for i, r := range refs {
		if r == nil {
			continue
		}
		err := r.Err()
		if err == nil {
			continue
		}
		kind := errors.KindReleased
		var e *errors.Error
		if stderrors.As(err, &e) {
			kind = e.Kind
		}
		return errors.New(errors.PhaseMarshal, kind).
			Value(i).
			Detail("argument %d", i).
			Cause(err).
			Build()
	}
	return nil
}

// Null is the tagged null reference.
func Null() jbind.Value {
	return jbind.ObjectValue(jbind.Null)
}

// Anchor turns an object result into an anchored Handle and deletes the
// local reference it arrived as. Null yields the null Handle.
func Anchor(env jbind.Env, v jbind.Value) (Handle, error) {
	if v.Kind != jbind.KindObject {
		return Handle{}, errors.TypeMismatch(errors.PhaseMarshal, "result", jbind.KindObject.String(), v.Kind.String())
	}
	if v.IsNull() {
		return Handle{}, nil
	}
	g, err := ref.Promote(env, v.Object())
	if err != nil {
		env.DeleteLocalRef(v.Object())
		return Handle{}, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Detail("anchor result").
			Cause(err).
			Build()
	}
	return NewHandle(g), nil
}

// AnchorAs is Anchor followed by Wrap.
func AnchorAs[P Proxy](env jbind.Env, v jbind.Value) (P, error) {
	h, err := Anchor(env, v)
	if err != nil {
		var zero P
		return zero, err
	}
	return Wrap[P](h), nil
}

// checkArgs validates args against declared parameter types.
func checkArgs(class, member string, params []Param, args []jbind.Value) error {
	if len(args) != len(params) {
		return errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
			Class(class).
			Member(member).
			Detail("expected %d arguments, got %d", len(params), len(args)).
			Build()
	}
	for i, p := range params {
		if want := p.Type.ValueKind(); args[i].Kind != want {
			e := errors.TypeMismatch(errors.PhaseMarshal, member, want.String(), args[i].Kind.String())
			e.Class = class
			e.Value = i
			return e
		}
	}
	return nil
}
