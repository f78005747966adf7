package bind

import (
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/sig"
)

// Param is a named parameter of a constructor or method.
type Param struct {
	Name string
	Type sig.Type
}

// Ctor declares the constructor of a class.
type Ctor struct {
	Params []Param
}

// Signature returns the constructor descriptor, e.g. "(Z)V".
func (c Ctor) Signature() string {
	return sig.Method(sig.Void, paramTypes(c.Params)...)
}

// FieldSpec declares an instance field.
type FieldSpec struct {
	Name string
	Type sig.Type
}

// MethodSpec declares a static or instance method.
type MethodSpec struct {
	Name   string
	Params []Param
	Return sig.Type
	Doc    string
}

// Signature returns the method descriptor, e.g. "(Ljava/lang/String;)Z".
func (m MethodSpec) Signature() string {
	return sig.Method(m.Return, paramTypes(m.Params)...)
}

func paramTypes(params []Param) []sig.Type {
	types := make([]sig.Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}

// Decl is the declaration of one foreign class or interface.
type Decl struct {
	// Name is the foreign name in slash form, e.g. "java/lang/Boolean".
	Name string

	// Extends is the direct superclass, empty for none.
	Extends string

	// Implements lists directly implemented interfaces. For an interface it
	// lists the interfaces it extends.
	Implements []string

	Interface   bool
	Constructor *Ctor
	Fields      []FieldSpec
	Static      []MethodSpec
	Methods     []MethodSpec
}

// EdgeKind distinguishes superclass from interface edges.
type EdgeKind uint8

const (
	EdgeExtends EdgeKind = iota
	EdgeImplements
)

func (k EdgeKind) String() string {
	if k == EdgeImplements {
		return "implements"
	}
	return "extends"
}

// Edge is a declared direct relation between two classes.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// ValidName reports whether name is a foreign class name in slash form.
func ValidName(name string) bool {
	return sig.ValidClassName(name)
}

// validate checks d against itself and the classes it names.
func (d *Decl) validate(lookup func(string) (*Class, bool)) ([]*Class, []Edge, error) {
	if !ValidName(d.Name) {
		return nil, nil, errors.InvalidDeclaration(d.Name, "class name must be in slash form")
	}

	var parents []*Class
	var edges []Edge
	addParent := func(name string, kind EdgeKind) error {
		if name == d.Name {
			return errors.InvalidDeclaration(d.Name, "class cannot be its own supertype")
		}
		p, ok := lookup(name)
		if !ok {
			return errors.InvalidDeclaration(d.Name, "supertype "+name+" is not declared")
		}
		switch {
		case kind == EdgeExtends && p.Interface():
			return errors.InvalidDeclaration(d.Name, "cannot extend interface "+name)
		case kind == EdgeImplements && !p.Interface():
			return errors.InvalidDeclaration(d.Name, "cannot implement class "+name)
		}
		for _, e := range edges {
			if e.To == name {
				return errors.Duplicate(errors.PhaseDeclare, d.Name, name)
			}
		}
		parents = append(parents, p)
		edges = append(edges, Edge{From: d.Name, To: name, Kind: kind})
		return nil
	}

	if d.Interface {
		if d.Extends != "" {
			return nil, nil, errors.InvalidDeclaration(d.Name, "interfaces extend through Implements")
		}
		if d.Constructor != nil {
			return nil, nil, errors.InvalidDeclaration(d.Name, "interfaces have no constructor")
		}
		if len(d.Fields) > 0 {
			return nil, nil, errors.InvalidDeclaration(d.Name, "interfaces have no instance fields")
		}
	}
	if d.Extends != "" {
		if err := addParent(d.Extends, EdgeExtends); err != nil {
			return nil, nil, err
		}
	}
	for _, name := range d.Implements {
		if err := addParent(name, EdgeImplements); err != nil {
			return nil, nil, err
		}
	}

	if d.Constructor != nil {
		if err := checkParams(d.Name, "<init>", d.Constructor.Params); err != nil {
			return nil, nil, err
		}
	}

	seen := make(map[string]bool)
	for _, f := range d.Fields {
		if f.Name == "" {
			return nil, nil, errors.InvalidDeclaration(d.Name, "field without a name")
		}
		if f.Type.Kind() == sig.KindVoid {
			return nil, nil, errors.InvalidDeclaration(d.Name, "field "+f.Name+" cannot be void")
		}
		if !validType(f.Type) {
			return nil, nil, errors.InvalidDeclaration(d.Name, "field "+f.Name+" has an invalid type")
		}
		if seen[f.Name] {
			return nil, nil, errors.Duplicate(errors.PhaseDeclare, d.Name, f.Name)
		}
		seen[f.Name] = true
	}

	for _, list := range [][]MethodSpec{d.Static, d.Methods} {
		seen := make(map[string]bool)
		for _, m := range list {
			if m.Name == "" || m.Name == "<init>" {
				return nil, nil, errors.InvalidDeclaration(d.Name, "invalid method name "+m.Name)
			}
			if err := checkParams(d.Name, m.Name, m.Params); err != nil {
				return nil, nil, err
			}
			if !validType(m.Return) {
				return nil, nil, errors.InvalidDeclaration(d.Name, "method "+m.Name+" has an invalid return type")
			}
			key := m.Name + m.Signature()
			if seen[key] {
				return nil, nil, errors.Duplicate(errors.PhaseDeclare, d.Name, m.Name+m.Signature())
			}
			seen[key] = true
		}
	}

	return parents, edges, nil
}

func checkParams(class, member string, params []Param) error {
	for _, p := range params {
		if p.Type.Kind() == sig.KindVoid || !validType(p.Type) {
			return errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
				Class(class).
				Member(member).
				Detail("parameter %s has an invalid type", p.Name).
				Build()
		}
	}
	return nil
}

func validType(t sig.Type) bool {
	switch t.Kind() {
	case sig.KindObject:
		return ValidName(t.Class())
	case sig.KindArray:
		return t.Elem().Kind() != sig.KindVoid && validType(t.Elem())
	}
	return true
}
