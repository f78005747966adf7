package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/decl"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/java/lang"
	"github.com/wippyai/jbind/jvmsim"
	"github.com/wippyai/jbind/sig"
)

// session holds the declared classes and the runtime calls are made against.
type session struct {
	file    *decl.File
	classes []*bind.Class
	vm      *jvmsim.VM
	env     *jvmsim.Env
	log     *zap.Logger
}

func newSession(file *decl.File, props map[string]string, log *zap.Logger) (*session, error) {
	reg := bind.NewRegistry()
	classes, err := file.Declare(reg, bind.Default())
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", file.Path(), err)
	}

	vm := jvmsim.New().WithLogger(log.Named("jvmsim")).WithProperties(props)
	if err := jvmsim.LoadLang(vm); err != nil {
		return nil, fmt.Errorf("load java.lang: %w", err)
	}

	return &session{
		file:    file,
		classes: classes,
		vm:      vm,
		env:     vm.Attach(),
		log:     log,
	}, nil
}

// Close detaches from the runtime.
func (s *session) Close() {
	s.env.Detach()
}

// function is a callable static method.
type function struct {
	class  *bind.Class
	method *bind.StaticMethod
}

func (f function) String() string {
	return f.class.Name() + "." + f.method.Name() + f.method.Signature()
}

func (s *session) functions() []function {
	var out []function
	for _, c := range s.classes {
		for _, m := range c.Statics() {
			out = append(out, function{class: c, method: m})
		}
	}
	return out
}

// findClass matches a foreign name in slash or dotted form, a Go name or a
// simple name.
func (s *session) findClass(name string) (*bind.Class, error) {
	slashed := strings.ReplaceAll(name, ".", "/")
	var matches []*bind.Class
	for i, c := range s.classes {
		switch {
		case c.Name() == slashed, s.file.Classes[i].GoName() == name:
			return c, nil
		case c.Name()[strings.LastIndexByte(c.Name(), '/')+1:] == name:
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, errors.InvalidInput(errors.PhaseResolve, "class name "+name+" is ambiguous")
	}
	return nil, errors.NotFound(errors.PhaseResolve, "class", name)
}

// lookup resolves "Class.method" or "Class.method(descriptor)".
func (s *session) lookup(target string) (*bind.StaticMethod, error) {
	name, desc := target, ""
	if i := strings.IndexByte(target, '('); i >= 0 {
		name, desc = target[:i], target[i:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return nil, errors.InvalidInput(errors.PhaseResolve, "expected Class.method, got "+target)
	}
	c, err := s.findClass(name[:dot])
	if err != nil {
		return nil, err
	}
	return c.Static(name[dot+1:], desc)
}

// CallTarget looks up and calls a static method with textual arguments.
func (s *session) CallTarget(target string, args []string) (string, error) {
	m, err := s.lookup(target)
	if err != nil {
		return "", err
	}
	return s.Call(m, args)
}

// Call calls m, converting args by the declared parameter types.
func (s *session) Call(m *bind.StaticMethod, args []string) (string, error) {
	spec := m.Spec()
	if len(args) != len(spec.Params) {
		return "", errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
			Class(m.Class().Name()).
			Member(m.Name()).
			Detail("expected %d arguments, got %d", len(spec.Params), len(args)).
			Build()
	}

	values := make([]jbind.Value, len(args))
	for i, p := range spec.Params {
		v, release, err := s.parseArg(p, strings.TrimSpace(args[i]))
		if err != nil {
			return "", err
		}
		defer release()
		values[i] = v
	}

	s.log.Debug("call", zap.String("method", m.Class().Name()+"."+m.Name()), zap.String("signature", m.Signature()))

	if !spec.Return.IsReference() {
		v, err := m.Call(s.env, values...)
		if err != nil {
			return "", err
		}
		return formatValue(v), nil
	}

	h, err := m.CallObject(s.env, values...)
	if err != nil {
		return "", err
	}
	defer h.Release()
	return lang.Describe(s.env, bind.Wrap[lang.Object](h))
}

func noRelease() {}

func (s *session) parseArg(p bind.Param, text string) (jbind.Value, func(), error) {
	invalid := func(err error) (jbind.Value, func(), error) {
		return jbind.Void, noRelease, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Member(p.Name).
			Detail("cannot convert %q to %s", text, p.Type).
			Cause(err).
			Build()
	}

	switch p.Type.Kind() {
	case sig.KindBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(b), noRelease, nil
	case sig.KindByte:
		n, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(int8(n)), noRelease, nil
	case sig.KindChar:
		units := utf16.Encode([]rune(text))
		if len(units) != 1 {
			return invalid(fmt.Errorf("expected a single UTF-16 unit"))
		}
		return bind.Prim(units[0]), noRelease, nil
	case sig.KindShort:
		n, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(int16(n)), noRelease, nil
	case sig.KindInt:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(int32(n)), noRelease, nil
	case sig.KindLong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(n), noRelease, nil
	case sig.KindFloat:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(float32(f)), noRelease, nil
	case sig.KindDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return invalid(err)
		}
		return bind.Prim(f), noRelease, nil
	}

	if text == "null" {
		return bind.Null(), noRelease, nil
	}
	if p.Type.Kind() == sig.KindObject && p.Type.Class() == lang.StringClass.Name() {
		str, err := lang.NewStringUTF(s.env, text)
		if err != nil {
			return jbind.Void, noRelease, err
		}
		return bind.Obj(str), str.Release, nil
	}
	return jbind.Void, noRelease, errors.Unsupported(errors.PhaseMarshal, "argument of type "+p.Type.String()+" (only null)")
}

func formatValue(v jbind.Value) string {
	switch v.Kind {
	case jbind.KindVoid:
		return "void"
	case jbind.KindBoolean:
		return strconv.FormatBool(v.Bool())
	case jbind.KindByte:
		return strconv.Itoa(int(v.Byte()))
	case jbind.KindChar:
		return strconv.QuoteRune(rune(v.Char()))
	case jbind.KindShort:
		return strconv.Itoa(int(v.Short()))
	case jbind.KindInt:
		return strconv.Itoa(int(v.Int()))
	case jbind.KindLong:
		return strconv.FormatInt(v.Long(), 10)
	case jbind.KindFloat:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case jbind.KindDouble:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
