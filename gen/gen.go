// Package gen renders Go proxy bindings from declaration files.
//
// For each declared class the output contains the proxy type, a Like
// interface accepted by parameters of that type, As casts to the class and
// its direct supertypes, the registered declaration, a constructor function,
// static functions, instance methods and field accessors. Output depends only
// on the declaration file, so generating twice yields identical bytes.
package gen

import (
	"bytes"
	"go/token"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/decl"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/sig"
)

const (
	jbindPkg = "github.com/wippyai/jbind"
	bindPkg  = "github.com/wippyai/jbind/bind"
	sigPkg   = "github.com/wippyai/jbind/sig"

	// Header is the first line of every generated file.
	Header = "Code generated by jbind. DO NOT EDIT."

	recv = "o"
)

// handleMethods are promoted from bind.Handle onto every proxy.
var handleMethods = map[string]bool{
	"Raw":      true,
	"IsNil":    true,
	"Anchored": true,
	"Err":      true,
	"Ref":      true,
	"Release":  true,
	"Clone":    true,
	"Handle":   true,
}

// locals are identifiers used by generated bodies.
var locals = map[string]bool{
	recv: true, "env": true, "v": true, "h": true, "err": true,
	"bool": true, "int8": true, "uint16": true, "int16": true,
	"int32": true, "int64": true, "float32": true, "float64": true,
	"jbind": true, "bind": true, "sig": true, "nil": true,
}

// Generate renders the bindings of f as formatted Go source.
func Generate(f *decl.File) ([]byte, error) {
	decls, err := f.Decls()
	if err != nil {
		return nil, err
	}

	g := &generator{
		file:     f,
		out:      jen.NewFile(f.Package),
		toplevel: make(map[string]string),
		reserved: make(map[string]bool),
	}
	for name := range locals {
		g.reserved[name] = true
	}

	g.out.HeaderComment(Header)
	g.out.ImportName(jbindPkg, "jbind")
	g.out.ImportName(bindPkg, "bind")
	g.out.ImportName(sigPkg, "sig")
	for _, imp := range f.Imports {
		alias := imp.Pkg[strings.LastIndexByte(imp.Pkg, '/')+1:]
		g.out.ImportName(imp.Pkg, alias)
		g.reserved[alias] = true
	}

	for i := range decls {
		if err := g.class(&f.Classes[i], decls[i]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := g.out.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "rendering "+f.Path())
	}
	return buf.Bytes(), nil
}

type generator struct {
	file     *decl.File
	out      *jen.File
	toplevel map[string]string
	reserved map[string]bool
}

// claim records a package-level identifier, failing on a clash.
func (g *generator) claim(name, owner string) error {
	if prev, ok := g.toplevel[name]; ok {
		return errors.New(errors.PhaseGenerate, errors.KindDuplicate).
			Class(owner).
			Detail("identifier %s already generated for %s", name, prev).
			Build()
	}
	g.toplevel[name] = owner
	return nil
}

// classGen holds the names of one class while it is rendered.
type classGen struct {
	*generator
	c       *decl.Class
	d       bind.Decl
	typ     string
	lower   string
	methods map[string]bool
}

func (g *generator) class(c *decl.Class, d bind.Decl) error {
	cg := &classGen{
		generator: g,
		c:         c,
		d:         d,
		typ:       c.GoName(),
		lower:     lowerFirst(c.GoName()),
		methods:   make(map[string]bool),
	}
	for _, name := range []string{cg.typ, cg.typ + "Like", cg.typ + "Class"} {
		if err := g.claim(name, c.Name); err != nil {
			return err
		}
	}

	cg.proxy()
	if err := cg.casts(); err != nil {
		return err
	}
	cg.declaration()
	if err := cg.constructor(); err != nil {
		return err
	}
	for i, m := range d.Static {
		if err := cg.static(&c.Static[i], m); err != nil {
			return err
		}
	}
	for i, m := range d.Methods {
		if err := cg.method(&c.Methods[i], m); err != nil {
			return err
		}
	}
	for i, fd := range d.Fields {
		if err := cg.field(&c.Fields[i], fd); err != nil {
			return err
		}
	}
	return nil
}

// member claims a proxy method name, suffixing names promoted from bind.Handle.
func (cg *classGen) member(name string) (string, error) {
	if handleMethods[name] {
		name += "Method"
	}
	if cg.methods[name] {
		return "", errors.New(errors.PhaseGenerate, errors.KindDuplicate).
			Class(cg.c.Name).
			Member(name).
			Detail("method name generated twice, set go: to disambiguate").
			Build()
	}
	cg.methods[name] = true
	return name, nil
}

func (cg *classGen) proxy() {
	kind := "class"
	if cg.d.Interface {
		kind = "interface"
	}
	if cg.c.Doc != "" {
		cg.out.Comment(cg.typ + " " + cg.c.Doc)
	} else {
		cg.out.Commentf("%s is a proxy for the %s %s.", cg.typ, kind, cg.c.Name)
	}
	cg.out.Type().Id(cg.typ).Struct(jen.Qual(bindPkg, "Handle"))
	cg.out.Line()

	cg.out.Commentf("%sLike is implemented by every proxy usable as %s.", cg.typ, cg.typ)
	cg.out.Type().Id(cg.typ+"Like").Interface(
		jen.Qual(bindPkg, "Referent"),
		jen.Id("As"+cg.typ).Params().Id(cg.typ),
	)
	cg.out.Line()
}

func (cg *classGen) casts() error {
	name, err := cg.member("As" + cg.typ)
	if err != nil {
		return err
	}
	cg.out.Commentf("%s returns o itself.", name)
	cg.out.Func().Params(jen.Id(recv).Id(cg.typ)).Id(name).Params().Id(cg.typ).Block(
		jen.Return(jen.Id(recv)),
	)
	cg.out.Line()

	for _, parent := range append([]string{cg.d.Extends}, cg.d.Implements...) {
		if parent == "" {
			continue
		}
		ref, _ := cg.file.TypeRef(parent)
		name, err := cg.member("As" + ref.Go)
		if err != nil {
			return err
		}
		cg.out.Commentf("%s views o as %s.", name, parent)
		cg.out.Func().Params(jen.Id(recv).Id(cg.typ)).Id(name).Params().Add(typeName(ref)).Block(
			jen.Return(typeName(ref).Call(jen.Id(recv))),
		)
		cg.out.Line()
	}
	return nil
}

func (cg *classGen) declaration() {
	items := []jen.Code{jen.Id("Name").Op(":").Lit(cg.d.Name)}
	if cg.d.Extends != "" {
		items = append(items, jen.Id("Extends").Op(":").Add(cg.className(cg.d.Extends)))
	}
	if len(cg.d.Implements) > 0 {
		names := make([]jen.Code, len(cg.d.Implements))
		for i, name := range cg.d.Implements {
			names[i] = cg.className(name)
		}
		items = append(items, jen.Id("Implements").Op(":").Index().String().Values(names...))
	}
	if cg.d.Interface {
		items = append(items, jen.Id("Interface").Op(":").True())
	}
	if cg.d.Constructor != nil {
		var ctor []jen.Code
		if len(cg.d.Constructor.Params) > 0 {
			ctor = append(ctor, jen.Id("Params").Op(":").Add(paramsLit(cg.d.Constructor.Params)))
		}
		items = append(items, jen.Id("Constructor").Op(":").Op("&").Qual(bindPkg, "Ctor").Values(ctor...))
	}
	if len(cg.d.Fields) > 0 {
		fields := make([]jen.Code, len(cg.d.Fields))
		for i, fd := range cg.d.Fields {
			fields[i] = jen.Values(jen.Id("Name").Op(":").Lit(fd.Name), jen.Id("Type").Op(":").Add(typeLit(fd.Type)))
		}
		items = append(items, jen.Id("Fields").Op(":").Index().Qual(bindPkg, "FieldSpec").Values(lines(fields)...))
	}
	if len(cg.d.Static) > 0 {
		items = append(items, jen.Id("Static").Op(":").Index().Qual(bindPkg, "MethodSpec").Values(methodsLit(cg.d.Static)...))
	}
	if len(cg.d.Methods) > 0 {
		items = append(items, jen.Id("Methods").Op(":").Index().Qual(bindPkg, "MethodSpec").Values(methodsLit(cg.d.Methods)...))
	}

	cg.out.Commentf("%sClass is the registered declaration of %s.", cg.typ, cg.d.Name)
	cg.out.Var().Id(cg.typ+"Class").Op("=").Qual(bindPkg, "MustDeclare").Call(
		jen.Qual(bindPkg, "Decl").Values(lines(items)...),
	)
	cg.out.Line()
}

// className refers to the declaration var of a supertype so that it is
// initialized first.
func (cg *classGen) className(foreign string) *jen.Statement {
	ref, _ := cg.file.TypeRef(foreign)
	if ref.Pkg != "" {
		return jen.Qual(ref.Pkg, ref.Go+"Class").Dot("Name").Call()
	}
	return jen.Id(ref.Go + "Class").Dot("Name").Call()
}

func (cg *classGen) constructor() error {
	if cg.d.Constructor == nil {
		return nil
	}
	fn := "New" + cg.typ
	acc := cg.lower + "Ctor"
	for _, name := range []string{fn, acc} {
		if err := cg.claim(name, cg.c.Name); err != nil {
			return err
		}
	}
	cg.out.Var().Id(acc).Op("=").Id(cg.typ + "Class").Dot("MustConstructor").Call()
	cg.out.Line()

	params, args, refs := cg.params(cg.d.Constructor.Params)
	block := live(refs, jen.Id(cg.typ).Values(), jen.Err())
	block = append(block,
		jen.List(jen.Id("h"), jen.Err()).Op(":=").Id(acc).Dot("New").Call(args...),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Id(cg.typ).Values(), jen.Err())),
		jen.Return(jen.Qual(bindPkg, "Wrap").Types(jen.Id(cg.typ)).Call(jen.Id("h")), jen.Nil()),
	)
	cg.out.Commentf("%s constructs a %s with <init>%s.", fn, cg.d.Name, cg.d.Constructor.Signature())
	cg.out.Func().Id(fn).Params(params...).Params(jen.Id(cg.typ), jen.Error()).Block(block...)
	cg.out.Line()
	return nil
}

func (cg *classGen) static(m *decl.Method, spec bind.MethodSpec) error {
	fn := cg.typ + m.GoName()
	acc := cg.lower + "Static" + m.GoName()
	for _, name := range []string{fn, acc} {
		if err := cg.claim(name, cg.c.Name); err != nil {
			return err
		}
	}
	cg.out.Var().Id(acc).Op("=").Id(cg.typ+"Class").Dot("MustStatic").Call(jen.Lit(spec.Name), jen.Lit(spec.Signature()))
	cg.out.Line()

	params, args, refs := cg.params(spec.Params)
	cg.doc(fn, spec)
	cg.out.Func().Id(fn).Params(params...).Add(cg.results(spec.Return)).Block(
		cg.body(jen.Id(acc), spec.Return, args, refs)...,
	)
	cg.out.Line()
	return nil
}

func (cg *classGen) method(m *decl.Method, spec bind.MethodSpec) error {
	name, err := cg.member(m.GoName())
	if err != nil {
		return err
	}
	acc := cg.lower + "Method" + m.GoName()
	if err := cg.claim(acc, cg.c.Name); err != nil {
		return err
	}
	cg.out.Var().Id(acc).Op("=").Id(cg.typ+"Class").Dot("MustMethod").Call(jen.Lit(spec.Name), jen.Lit(spec.Signature()))
	cg.out.Line()

	params, args, refs := cg.params(spec.Params)
	args = append([]jen.Code{args[0], jen.Id(recv)}, args[1:]...)
	cg.doc(name, spec)
	cg.out.Func().Params(jen.Id(recv).Id(cg.typ)).Id(name).Params(params...).Add(cg.results(spec.Return)).Block(
		cg.body(jen.Id(acc), spec.Return, args, refs)...,
	)
	cg.out.Line()
	return nil
}

func (cg *classGen) field(fd *decl.Field, spec bind.FieldSpec) error {
	getter, err := cg.member("Get" + fd.GoName())
	if err != nil {
		return err
	}
	setter, err := cg.member("Set" + fd.GoName())
	if err != nil {
		return err
	}
	acc := cg.lower + "Field" + fd.GoName()
	if err := cg.claim(acc, cg.c.Name); err != nil {
		return err
	}
	cg.out.Var().Id(acc).Op("=").Id(cg.typ + "Class").Dot("MustField").Call(jen.Lit(spec.Name))
	cg.out.Line()

	env := jen.Id("env").Qual(jbindPkg, "Env")
	call := "Get"
	if spec.Type.IsReference() {
		call = "GetObject"
	}
	get := jen.List(jen.Id(resultVar(spec.Type)), jen.Err()).Op(":=").Id(acc).Dot(call).Call(jen.Id("env"), jen.Id(recv))
	cg.out.Commentf("%s reads the field %s %s.", getter, spec.Name, spec.Type.Signature())
	cg.out.Func().Params(jen.Id(recv).Id(cg.typ)).Id(getter).Params(env).Params(cg.goType(spec.Type), jen.Error()).Block(
		get,
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(cg.zero(spec.Type), jen.Err())),
		jen.Return(cg.unmarshal(spec.Type), jen.Nil()),
	)
	cg.out.Line()

	var set []jen.Code
	if spec.Type.IsReference() {
		set = live([]jen.Code{jen.Id("value")}, jen.Err())
	}
	set = append(set, jen.Return(jen.Id(acc).Dot("Set").Call(jen.Id("env"), jen.Id(recv), marshal(spec.Type, "value"))))
	cg.out.Commentf("%s writes the field %s %s.", setter, spec.Name, spec.Type.Signature())
	cg.out.Func().Params(jen.Id(recv).Id(cg.typ)).Id(setter).Params(
		jen.Id("env").Qual(jbindPkg, "Env"),
		jen.Id("value").Add(cg.paramType(spec.Type)),
	).Error().Block(set...)
	cg.out.Line()
	return nil
}

func (cg *classGen) doc(name string, spec bind.MethodSpec) {
	if spec.Doc != "" {
		cg.out.Comment(name + " " + spec.Doc)
		return
	}
	cg.out.Commentf("%s calls %s%s.", name, spec.Name, spec.Signature())
}

// params returns the Go parameter list, starting with env, the matching
// call arguments and the reference parameters.
func (cg *classGen) params(list []bind.Param) (params, args, refs []jen.Code) {
	params = []jen.Code{jen.Id("env").Qual(jbindPkg, "Env")}
	args = []jen.Code{jen.Id("env")}
	used := make(map[string]bool)
	for i, p := range list {
		name := cg.paramName(p.Name, i, used)
		params = append(params, jen.Id(name).Add(cg.paramType(p.Type)))
		args = append(args, marshal(p.Type, name))
		if p.Type.IsReference() {
			refs = append(refs, jen.Id(name))
		}
	}
	return params, args, refs
}

// live rejects released or stale reference arguments before the call.
func live(refs []jen.Code, ret ...jen.Code) []jen.Code {
	if len(refs) == 0 {
		return nil
	}
	return []jen.Code{
		jen.If(
			jen.Err().Op(":=").Qual(bindPkg, "Live").Call(refs...),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(ret...)),
	}
}

func (cg *classGen) paramName(name string, i int, used map[string]bool) string {
	if !token.IsIdentifier(name) || token.IsKeyword(name) || cg.reserved[name] {
		name += "Arg"
	}
	if !token.IsIdentifier(name) || used[name] {
		name = "arg" + strconv.Itoa(i)
	}
	used[name] = true
	return name
}

func (cg *classGen) results(ret sig.Type) *jen.Statement {
	if ret.Kind() == sig.KindVoid {
		return jen.Error()
	}
	return jen.Params(cg.goType(ret), jen.Error())
}

// body invokes acc with args and converts the result.
func (cg *classGen) body(acc *jen.Statement, ret sig.Type, args, refs []jen.Code) []jen.Code {
	if ret.Kind() == sig.KindVoid {
		return append(live(refs, jen.Err()),
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Add(acc).Dot("Call").Call(args...),
			jen.Return(jen.Err()),
		)
	}
	call := "Call"
	if ret.IsReference() {
		call = "CallObject"
	}
	return append(live(refs, cg.zero(ret), jen.Err()),
		jen.List(jen.Id(resultVar(ret)), jen.Err()).Op(":=").Add(acc).Dot(call).Call(args...),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(cg.zero(ret), jen.Err())),
		jen.Return(cg.unmarshal(ret), jen.Nil()),
	)
}

func resultVar(t sig.Type) string {
	if t.IsReference() {
		return "h"
	}
	return "v"
}

// ref returns the proxy bound to an object type, if any.
func (cg *classGen) ref(t sig.Type) (decl.TypeRef, bool) {
	if t.Kind() != sig.KindObject {
		return decl.TypeRef{}, false
	}
	return cg.file.TypeRef(t.Class())
}

func (cg *classGen) goType(t sig.Type) *jen.Statement {
	if t.Kind().IsPrimitive() {
		return primitive(t.Kind())
	}
	if ref, ok := cg.ref(t); ok {
		return typeName(ref)
	}
	return jen.Qual(bindPkg, "Handle")
}

func (cg *classGen) paramType(t sig.Type) *jen.Statement {
	if t.Kind().IsPrimitive() {
		return primitive(t.Kind())
	}
	if ref, ok := cg.ref(t); ok {
		if ref.Pkg != "" {
			return jen.Qual(ref.Pkg, ref.Go+"Like")
		}
		return jen.Id(ref.Go + "Like")
	}
	return jen.Qual(bindPkg, "Referent")
}

func (cg *classGen) zero(t sig.Type) *jen.Statement {
	switch {
	case t.Kind() == sig.KindBoolean:
		return jen.False()
	case t.Kind().IsPrimitive():
		return jen.Lit(0)
	}
	return cg.goType(t).Values()
}

func (cg *classGen) unmarshal(t sig.Type) *jen.Statement {
	if t.Kind().IsPrimitive() {
		return jen.Qual(bindPkg, "Unwrap").Types(primitive(t.Kind())).Call(jen.Id("v"))
	}
	if ref, ok := cg.ref(t); ok {
		return jen.Qual(bindPkg, "Wrap").Types(typeName(ref)).Call(jen.Id("h"))
	}
	return jen.Id("h")
}

func marshal(t sig.Type, name string) *jen.Statement {
	if t.Kind().IsPrimitive() {
		return jen.Qual(bindPkg, "Prim").Call(jen.Id(name))
	}
	return jen.Qual(bindPkg, "Obj").Call(jen.Id(name))
}

func typeName(ref decl.TypeRef) *jen.Statement {
	if ref.Pkg != "" {
		return jen.Qual(ref.Pkg, ref.Go)
	}
	return jen.Id(ref.Go)
}

func primitive(k sig.Kind) *jen.Statement {
	switch k {
	case sig.KindBoolean:
		return jen.Bool()
	case sig.KindByte:
		return jen.Int8()
	case sig.KindChar:
		return jen.Uint16()
	case sig.KindShort:
		return jen.Int16()
	case sig.KindInt:
		return jen.Int32()
	case sig.KindLong:
		return jen.Int64()
	case sig.KindFloat:
		return jen.Float32()
	default:
		return jen.Float64()
	}
}

// typeLit renders t as an expression of package sig.
func typeLit(t sig.Type) *jen.Statement {
	switch t.Kind() {
	case sig.KindObject:
		return jen.Qual(sigPkg, "Object").Call(jen.Lit(t.Class()))
	case sig.KindArray:
		return jen.Qual(sigPkg, "Array").Call(typeLit(t.Elem()))
	}
	return jen.Qual(sigPkg, exportedKind(t.Kind()))
}

func exportedKind(k sig.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func paramsLit(params []bind.Param) *jen.Statement {
	items := make([]jen.Code, len(params))
	for i, p := range params {
		items[i] = jen.Values(jen.Id("Name").Op(":").Lit(p.Name), jen.Id("Type").Op(":").Add(typeLit(p.Type)))
	}
	return jen.Index().Qual(bindPkg, "Param").Values(items...)
}

func methodsLit(specs []bind.MethodSpec) []jen.Code {
	items := make([]jen.Code, len(specs))
	for i, m := range specs {
		fields := []jen.Code{jen.Id("Name").Op(":").Lit(m.Name)}
		if len(m.Params) > 0 {
			fields = append(fields, jen.Id("Params").Op(":").Add(paramsLit(m.Params)))
		}
		if m.Return.Kind() != sig.KindVoid {
			fields = append(fields, jen.Id("Return").Op(":").Add(typeLit(m.Return)))
		}
		if m.Doc != "" {
			fields = append(fields, jen.Id("Doc").Op(":").Lit(m.Doc))
		}
		items[i] = jen.Values(fields...)
	}
	return lines(items)
}

// lines lays out composite literal elements one per line.
func lines(items []jen.Code) []jen.Code {
	out := make([]jen.Code, 0, len(items)+1)
	for _, item := range items {
		out = append(out, jen.Line().Add(item))
	}
	return append(out, jen.Line())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
