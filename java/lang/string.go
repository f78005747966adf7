package lang

import (
	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/errors"
)

// NewStringUTF creates a java/lang/String holding s.
func NewStringUTF(env jbind.Env, s string) (String, error) {
	obj, err := env.NewStringUTF(s)
	if err != nil {
		return String{}, errors.Wrap(errors.PhaseMarshal, errors.KindInvalidInput, err, "create string")
	}
	return bind.AnchorAs[String](env, jbind.ObjectValue(obj))
}

// Text returns the content of o as a Go string.
func (o String) Text(env jbind.Env) (string, error) {
	if err := o.Err(); err != nil {
		return "", err
	}
	if o.Raw() == jbind.Null {
		return "", errors.NilReference(StringClass.Name(), "Text")
	}
	s, err := env.GetStringUTF(o.Raw())
	if err != nil {
		return "", errors.Wrap(errors.PhaseMarshal, errors.KindInvalidInput, err, "read string")
	}
	return s, nil
}

// Describe calls toString on v and returns the result as a Go string.
// A nil v yields "null".
func Describe(env jbind.Env, v ObjectLike) (string, error) {
	if v == nil {
		return "null", nil
	}
	if err := v.Err(); err != nil {
		return "", err
	}
	if v.Raw() == jbind.Null {
		return "null", nil
	}
	s, err := v.AsObject().ToString(env)
	if err != nil {
		return "", err
	}
	defer s.Release()
	return s.Text(env)
}

// ThrowableOf returns the exception object carried by err as a new holder
// the caller must release. It reports false when err holds no thrown object.
func ThrowableOf(err error) (Throwable, bool) {
	h, ok := bind.Thrown(err)
	if !ok {
		return Throwable{}, false
	}
	return bind.Wrap[Throwable](h), true
}
