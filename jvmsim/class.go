package jvmsim

import (
	"fmt"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/sig"
)

// MethodFunc implements a method body. this is nil for static methods.
type MethodFunc func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error)

// ClassDef describes a class to define.
type ClassDef struct {
	Name       string
	Super      string // defaults to java/lang/Object for classes
	Interfaces []string
	Interface  bool
	Fields     []FieldDef
	Methods    []MethodDef
}

// FieldDef describes an instance field.
type FieldDef struct {
	Name string
	Sig  string
}

// MethodDef describes a method or constructor ("<init>").
// A nil Fn declares an abstract method.
type MethodDef struct {
	Name   string
	Sig    string
	Static bool
	Fn     MethodFunc
}

// Class is a defined class.
type Class struct {
	Name       string
	Super      *Class
	Interfaces []*Class
	Interface  bool

	index   int
	methods map[string]*Method
	statics map[string]*Method
	fields  map[string]*Field
	mirror  *Obj
}

// Method is a defined method.
type Method struct {
	Class  *Class
	Name   string
	Sig    string
	Static bool
	Fn     MethodFunc

	params []jbind.Kind
	ret    jbind.Kind
	index  int
}

// Field is a defined instance field.
type Field struct {
	Class *Class
	Name  string
	Sig   string
	Kind  jbind.Kind

	index int
}

func memberKey(name, signature string) string {
	return name + signature
}

// IsSubclassOf reports whether c is other or inherits from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.Super {
		if k == other {
			return true
		}
		for _, iface := range k.Interfaces {
			if iface.IsSubclassOf(other) {
				return true
			}
		}
	}
	return false
}

// findMethod searches c, its superclasses and then its interfaces.
func (c *Class) findMethod(key string, static bool) *Method {
	for k := c; k != nil; k = k.Super {
		table := k.methods
		if static {
			table = k.statics
		}
		if m, ok := table[key]; ok {
			return m
		}
	}
	if static {
		return nil
	}
	for k := c; k != nil; k = k.Super {
		for _, iface := range k.Interfaces {
			if m := iface.findMethod(key, false); m != nil {
				return m
			}
		}
	}
	return nil
}

// implementation returns the most derived concrete method for key.
func (c *Class) implementation(key string) *Method {
	for k := c; k != nil; k = k.Super {
		if m, ok := k.methods[key]; ok && m.Fn != nil {
			return m
		}
	}
	return nil
}

func (c *Class) findField(key string) *Field {
	for k := c; k != nil; k = k.Super {
		if f, ok := k.fields[key]; ok {
			return f
		}
	}
	return nil
}

// allFields returns the fields of c and its superclasses.
func (c *Class) allFields() []*Field {
	var out []*Field
	for k := c; k != nil; k = k.Super {
		for _, f := range k.fields {
			out = append(out, f)
		}
	}
	return out
}

func newMethod(c *Class, def MethodDef) (*Method, error) {
	params, ret, err := sig.ParseMethod(def.Sig)
	if err != nil {
		return nil, err
	}
	if def.Name == "<init>" && (def.Static || ret.Kind() != sig.KindVoid) {
		return nil, fmt.Errorf("constructor of %s must be a void instance method", c.Name)
	}
	m := &Method{
		Class:  c,
		Name:   def.Name,
		Sig:    def.Sig,
		Static: def.Static,
		Fn:     def.Fn,
		ret:    ret.ValueKind(),
	}
	for _, p := range params {
		m.params = append(m.params, p.ValueKind())
	}
	return m, nil
}

func newField(c *Class, def FieldDef) (*Field, error) {
	t, err := sig.Parse(def.Sig)
	if err != nil {
		return nil, err
	}
	return &Field{Class: c, Name: def.Name, Sig: def.Sig, Kind: t.ValueKind()}, nil
}
