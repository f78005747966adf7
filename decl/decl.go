// Package decl reads binding declarations from YAML files.
//
// A declaration file describes the foreign classes of one Go package:
//
//	package: lang
//	classes:
//	  - name: java/lang/Boolean
//	    extends: java/lang/Object
//	    constructor:
//	      params: [{name: value, type: boolean}]
//	    fields:
//	      - {name: value, type: boolean}
//	    static:
//	      - name: parseBoolean
//	        params: [{name: s, type: String}]
//	        returns: boolean
//	    methods:
//	      - name: booleanValue
//	        returns: boolean
//
// Types are written as primitive keywords (int, boolean, ...), void for
// returns, a foreign name in slash form, the Go name of a class declared in
// the file or imported, or any of those followed by [] for arrays. A method
// may give a raw descriptor in sig instead of parameter and return types.
package decl

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/sig"
)

// File is a parsed declaration file.
type File struct {
	// Package is the Go package name of the generated bindings.
	Package string `yaml:"package"`

	// Imports lists foreign classes bound in other Go packages.
	Imports []Import `yaml:"imports,omitempty"`

	// Classes lists the classes bound by this file. A class may only extend
	// or implement imports and classes listed before it.
	Classes []Class `yaml:"classes"`

	path string
}

// Import refers to a proxy type generated elsewhere.
type Import struct {
	// Name is the foreign name, e.g. "java/lang/Object".
	Name string `yaml:"name"`

	// Go is the proxy type name. Defaults to the last segment of Name.
	Go string `yaml:"go,omitempty"`

	// Pkg is the Go import path of the package declaring the proxy.
	Pkg string `yaml:"pkg"`
}

// Class declares one foreign class or interface.
type Class struct {
	Name        string       `yaml:"name"`
	Go          string       `yaml:"go,omitempty"`
	Doc         string       `yaml:"doc,omitempty"`
	Extends     string       `yaml:"extends,omitempty"`
	Implements  []string     `yaml:"implements,omitempty"`
	Interface   bool         `yaml:"interface,omitempty"`
	Constructor *Constructor `yaml:"constructor,omitempty"`
	Fields      []Field      `yaml:"fields,omitempty"`
	Static      []Method     `yaml:"static,omitempty"`
	Methods     []Method     `yaml:"methods,omitempty"`
}

// Constructor declares the constructor parameters.
type Constructor struct {
	Params []Param `yaml:"params,omitempty"`
}

// Param is a named, typed parameter.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// Field declares an instance field.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Go   string `yaml:"go,omitempty"`
}

// Method declares a static or instance method.
type Method struct {
	Name    string  `yaml:"name"`
	Go      string  `yaml:"go,omitempty"`
	Doc     string  `yaml:"doc,omitempty"`
	Params  []Param `yaml:"params,omitempty"`
	Returns string  `yaml:"returns,omitempty"`

	// Sig is a raw method descriptor. When set, Params only supplies names
	// and Returns must be empty or agree with it.
	Sig string `yaml:"sig,omitempty"`
}

// Load reads and parses a declaration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declarations %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses declaration file content. The path is used only for error messages.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "parsing "+path)
	}
	f.path = path
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Path returns the path the file was parsed from.
func (f *File) Path() string {
	return f.path
}

func (f *File) fail(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidDeclaration).
		Detail(f.path+": "+format, args...).
		Build()
}

// validate checks names, ordering and types. Hierarchy rules that need the
// declared supertypes are checked again when declaring.
func (f *File) validate() error {
	if !token.IsIdentifier(f.Package) {
		return f.fail("package %q is not a Go identifier", f.Package)
	}
	if len(f.Classes) == 0 {
		return f.fail("no classes declared")
	}

	known := make(map[string]bool)
	goNames := make(map[string]string)
	addGo := func(goName, foreign string) error {
		if !token.IsIdentifier(goName) || !token.IsExported(goName) {
			return f.fail("%s: go name %q is not an exported identifier", foreign, goName)
		}
		if prev, ok := goNames[goName]; ok {
			return f.fail("%s: go name %q already used by %s", foreign, goName, prev)
		}
		goNames[goName] = foreign
		return nil
	}

	for i, imp := range f.Imports {
		if !bind.ValidName(imp.Name) {
			return f.fail("imports[%d]: invalid class name %q", i, imp.Name)
		}
		if imp.Pkg == "" {
			return f.fail("imports[%d] (%s): pkg is required", i, imp.Name)
		}
		if known[imp.Name] {
			return f.fail("imports[%d]: %s imported twice", i, imp.Name)
		}
		if err := addGo(imp.GoName(), imp.Name); err != nil {
			return err
		}
		known[imp.Name] = true
	}

	for i := range f.Classes {
		c := &f.Classes[i]
		if !bind.ValidName(c.Name) {
			return f.fail("classes[%d]: invalid class name %q", i, c.Name)
		}
		if known[c.Name] {
			return f.fail("classes[%d]: %s declared twice", i, c.Name)
		}
		if err := addGo(c.GoName(), c.Name); err != nil {
			return err
		}
		for _, parent := range append([]string{c.Extends}, c.Implements...) {
			if parent != "" && !known[parent] {
				return f.fail("%s: supertype %s must be imported or declared earlier", c.Name, parent)
			}
		}
		known[c.Name] = true
	}

	// Types may refer to classes declared later, so resolve them last.
	for i := range f.Classes {
		if _, err := f.classDecl(&f.Classes[i]); err != nil {
			return err
		}
	}
	return nil
}

// GoName returns the proxy type name of an import.
func (i Import) GoName() string {
	if i.Go != "" {
		return i.Go
	}
	return defaultGoName(i.Name)
}

// GoName returns the proxy type name of a class.
func (c *Class) GoName() string {
	if c.Go != "" {
		return c.Go
	}
	return defaultGoName(c.Name)
}

// GoName returns the Go name of a method.
func (m *Method) GoName() string {
	if m.Go != "" {
		return m.Go
	}
	return exported(m.Name)
}

// GoName returns the Go name used in the field's Get/Set accessors.
func (fd *Field) GoName() string {
	if fd.Go != "" {
		return fd.Go
	}
	return exported(fd.Name)
}

func defaultGoName(foreign string) string {
	name := foreign[strings.LastIndexByte(foreign, '/')+1:]
	return exported(strings.ReplaceAll(name, "$", "_"))
}

func exported(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// TypeRef locates the Go proxy type of a foreign class.
type TypeRef struct {
	Foreign string
	Go      string

	// Pkg is the import path, empty for classes of this file.
	Pkg string
}

// TypeRef returns the proxy type bound to a foreign class name.
func (f *File) TypeRef(foreign string) (TypeRef, bool) {
	for i := range f.Classes {
		if f.Classes[i].Name == foreign {
			return TypeRef{Foreign: foreign, Go: f.Classes[i].GoName()}, true
		}
	}
	for _, imp := range f.Imports {
		if imp.Name == foreign {
			return TypeRef{Foreign: foreign, Go: imp.GoName(), Pkg: imp.Pkg}, true
		}
	}
	return TypeRef{}, false
}

// ResolveType parses a type name as written in the file.
func (f *File) ResolveType(name string) (sig.Type, error) {
	name = strings.TrimSpace(name)
	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		t, err := f.ResolveType(elem)
		if err != nil {
			return sig.Type{}, err
		}
		if t.Kind() == sig.KindVoid {
			return sig.Type{}, f.fail("array of void")
		}
		return sig.Array(t), nil
	}
	if t, ok := sig.Keyword(name); ok {
		return t, nil
	}
	if strings.Contains(name, "/") {
		if !bind.ValidName(name) {
			return sig.Type{}, f.fail("invalid class name %q", name)
		}
		return sig.Object(name), nil
	}
	for i := range f.Classes {
		if f.Classes[i].GoName() == name {
			return sig.Object(f.Classes[i].Name), nil
		}
	}
	for _, imp := range f.Imports {
		if imp.GoName() == name {
			return sig.Object(imp.Name), nil
		}
	}
	return sig.Type{}, f.fail("unknown type %q", name)
}

func (f *File) params(owner string, list []Param) ([]bind.Param, error) {
	out := make([]bind.Param, 0, len(list))
	for i, p := range list {
		if p.Type == "" {
			return nil, f.fail("%s: parameter %d has no type", owner, i)
		}
		t, err := f.ResolveType(p.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, bind.Param{Name: paramName(p.Name, i), Type: t})
	}
	return out, nil
}

func paramName(name string, i int) string {
	if name == "" {
		return fmt.Sprintf("arg%d", i)
	}
	return name
}

func (f *File) method(owner string, m *Method) (bind.MethodSpec, error) {
	spec := bind.MethodSpec{Name: m.Name, Doc: m.Doc}
	where := owner + "." + m.Name

	if m.Sig == "" {
		params, err := f.params(where, m.Params)
		if err != nil {
			return spec, err
		}
		spec.Params = params
		if m.Returns != "" {
			if spec.Return, err = f.ResolveType(m.Returns); err != nil {
				return spec, err
			}
		}
		return spec, nil
	}

	types, ret, err := sig.ParseMethod(m.Sig)
	if err != nil {
		return spec, err
	}
	if len(m.Params) > 0 && len(m.Params) != len(types) {
		return spec, f.fail("%s: %d parameter names for descriptor %s", where, len(m.Params), m.Sig)
	}
	for i, t := range types {
		var p Param
		if i < len(m.Params) {
			p = m.Params[i]
		}
		if p.Type != "" {
			declared, err := f.ResolveType(p.Type)
			if err != nil {
				return spec, err
			}
			if !declared.Equal(t) {
				return spec, f.fail("%s: parameter %d is %s in descriptor %s", where, i, t, m.Sig)
			}
		}
		spec.Params = append(spec.Params, bind.Param{Name: paramName(p.Name, i), Type: t})
	}
	if m.Returns != "" {
		declared, err := f.ResolveType(m.Returns)
		if err != nil {
			return spec, err
		}
		if !declared.Equal(ret) {
			return spec, f.fail("%s: returns %s in descriptor %s", where, ret, m.Sig)
		}
	}
	spec.Return = ret
	return spec, nil
}

func (f *File) classDecl(c *Class) (bind.Decl, error) {
	d := bind.Decl{
		Name:       c.Name,
		Extends:    c.Extends,
		Implements: append([]string(nil), c.Implements...),
		Interface:  c.Interface,
	}
	if c.Constructor != nil {
		params, err := f.params(c.Name+".<init>", c.Constructor.Params)
		if err != nil {
			return d, err
		}
		d.Constructor = &bind.Ctor{Params: params}
	}
	for _, fd := range c.Fields {
		t, err := f.ResolveType(fd.Type)
		if err != nil {
			return d, err
		}
		d.Fields = append(d.Fields, bind.FieldSpec{Name: fd.Name, Type: t})
	}
	for i := range c.Static {
		spec, err := f.method(c.Name, &c.Static[i])
		if err != nil {
			return d, err
		}
		d.Static = append(d.Static, spec)
	}
	for i := range c.Methods {
		spec, err := f.method(c.Name, &c.Methods[i])
		if err != nil {
			return d, err
		}
		d.Methods = append(d.Methods, spec)
	}
	return d, nil
}

// Decls converts the classes of f into declarations, in file order.
func (f *File) Decls() ([]bind.Decl, error) {
	out := make([]bind.Decl, 0, len(f.Classes))
	for i := range f.Classes {
		d, err := f.classDecl(&f.Classes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Declare declares the classes of f in reg. Imports missing from reg are
// copied from base together with their supertypes; base may be nil when
// reg already holds them.
func (f *File) Declare(reg, base *bind.Registry) ([]*bind.Class, error) {
	for _, imp := range f.Imports {
		if err := copyDecl(reg, base, imp.Name); err != nil {
			return nil, err
		}
	}

	decls, err := f.Decls()
	if err != nil {
		return nil, err
	}
	out := make([]*bind.Class, 0, len(decls))
	for _, d := range decls {
		c, err := reg.Declare(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func copyDecl(reg, base *bind.Registry, name string) error {
	if _, ok := reg.Lookup(name); ok {
		return nil
	}
	if base == nil {
		return errors.NotFound(errors.PhaseDeclare, "imported class", name)
	}
	c, ok := base.Lookup(name)
	if !ok {
		return errors.NotFound(errors.PhaseDeclare, "imported class", name)
	}
	d := c.Decl()
	for _, parent := range append([]string{d.Extends}, d.Implements...) {
		if parent == "" {
			continue
		}
		if err := copyDecl(reg, base, parent); err != nil {
			return err
		}
	}
	_, err := reg.Declare(d)
	return err
}
