package bind

import (
	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/cache"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/sig"
)

// Class is the binding produced from one Decl: the class resolution slot,
// an accessor per declared member, and the declared direct supertypes.
// A Class is immutable after declaration and safe for concurrent use.
type Class struct {
	decl    Decl
	typ     sig.Type
	parents []*Class
	edges   []Edge

	ctor    *Constructor
	methods []*Method
	statics []*StaticMethod
	fields  []*Field

	slot cache.Slot[jbind.Class]
}

func newClass(d Decl, parents []*Class, edges []Edge) *Class {
	c := &Class{
		decl:    cloneDecl(d),
		typ:     sig.Object(d.Name),
		parents: parents,
		edges:   edges,
	}
	if d.Constructor != nil {
		c.ctor = &Constructor{class: c, spec: *c.decl.Constructor, sig: c.decl.Constructor.Signature()}
	}
	for _, m := range c.decl.Methods {
		c.methods = append(c.methods, &Method{class: c, spec: m, sig: m.Signature()})
	}
	for _, m := range c.decl.Static {
		c.statics = append(c.statics, &StaticMethod{class: c, spec: m, sig: m.Signature()})
	}
	for _, f := range c.decl.Fields {
		c.fields = append(c.fields, &Field{class: c, spec: f, sig: f.Type.Signature()})
	}
	return c
}

func cloneDecl(d Decl) Decl {
	out := d
	out.Implements = append([]string(nil), d.Implements...)
	out.Fields = append([]FieldSpec(nil), d.Fields...)
	out.Static = cloneMethods(d.Static)
	out.Methods = cloneMethods(d.Methods)
	if d.Constructor != nil {
		out.Constructor = &Ctor{Params: append([]Param(nil), d.Constructor.Params...)}
	}
	return out
}

func cloneMethods(list []MethodSpec) []MethodSpec {
	out := make([]MethodSpec, len(list))
	for i, m := range list {
		m.Params = append([]Param(nil), m.Params...)
		out[i] = m
	}
	return out
}

// Name returns the foreign name in slash form.
func (c *Class) Name() string {
	return c.decl.Name
}

// Signature returns the type descriptor, e.g. "Ljava/lang/String;".
func (c *Class) Signature() string {
	return c.typ.Signature()
}

// Type returns the foreign type of instances of c.
func (c *Class) Type() sig.Type {
	return c.typ
}

// Decl returns a copy of the declaration c was built from.
func (c *Class) Decl() Decl {
	return cloneDecl(c.decl)
}

// Interface reports whether c was declared as an interface.
func (c *Class) Interface() bool {
	return c.decl.Interface
}

// Resolve returns the class reference for env's attachment, looking it up
// on the first use under each attachment.
func (c *Class) Resolve(env jbind.Env) (jbind.Class, error) {
	att := env.AttachmentID()
	return c.slot.Resolve(att, func() (jbind.Class, error) {
		cls, err := env.FindClass(c.decl.Name)
		if err != nil {
			Logger().Debug("class resolution failed",
				zap.String("class", c.decl.Name),
				zap.Uint64("attachment", uint64(att)),
				zap.Error(err))
			return 0, errors.ClassNotFound(c.decl.Name, err)
		}
		logResolved(c.decl.Name, "", "", att, c.slot.Attachment())
		return cls, nil
	})
}

// Cached reports whether the class reference is cached for att.
func (c *Class) Cached(att jbind.AttachmentID) bool {
	return c.slot.Cached(att)
}

// Constructor returns the constructor accessor, or nil if none was declared.
func (c *Class) Constructor() *Constructor {
	return c.ctor
}

// Method returns the instance method accessor with the given name and
// descriptor. An empty descriptor matches the only method of that name.
func (c *Class) Method(name, signature string) (*Method, error) {
	var found *Method
	for _, m := range c.methods {
		if m.spec.Name != name {
			continue
		}
		if signature != "" && m.sig != signature {
			continue
		}
		if found != nil {
			return nil, c.ambiguous(name)
		}
		found = m
	}
	if found == nil {
		return nil, c.missing("method", name, signature)
	}
	return found, nil
}

// Static returns the static method accessor with the given name and
// descriptor. An empty descriptor matches the only method of that name.
func (c *Class) Static(name, signature string) (*StaticMethod, error) {
	var found *StaticMethod
	for _, m := range c.statics {
		if m.spec.Name != name {
			continue
		}
		if signature != "" && m.sig != signature {
			continue
		}
		if found != nil {
			return nil, c.ambiguous(name)
		}
		found = m
	}
	if found == nil {
		return nil, c.missing("static method", name, signature)
	}
	return found, nil
}

// Field returns the field accessor with the given name.
func (c *Class) Field(name string) (*Field, error) {
	for _, f := range c.fields {
		if f.spec.Name == name {
			return f, nil
		}
	}
	return nil, c.missing("field", name, "")
}

// MustMethod is Method that panics on error. Generated code uses it to bind
// accessors at package initialization.
func (c *Class) MustMethod(name, signature string) *Method {
	m, err := c.Method(name, signature)
	if err != nil {
		panic(err)
	}
	return m
}

// MustStatic is Static that panics on error.
func (c *Class) MustStatic(name, signature string) *StaticMethod {
	m, err := c.Static(name, signature)
	if err != nil {
		panic(err)
	}
	return m
}

// MustField is Field that panics on error.
func (c *Class) MustField(name string) *Field {
	f, err := c.Field(name)
	if err != nil {
		panic(err)
	}
	return f
}

// MustConstructor returns the constructor accessor and panics if none was declared.
func (c *Class) MustConstructor() *Constructor {
	if c.ctor == nil {
		panic(c.missing("constructor", "<init>", ""))
	}
	return c.ctor
}

func (c *Class) ambiguous(name string) error {
	return errors.New(errors.PhaseDeclare, errors.KindInvalidInput).
		Class(c.decl.Name).
		Member(name).
		Detail("overloaded, a signature is required").
		Build()
}

func (c *Class) missing(what, name, signature string) error {
	e := errors.NotFound(errors.PhaseDeclare, what, name)
	e.Class = c.decl.Name
	e.Signature = signature
	return e
}

// Methods returns the instance method accessors in declaration order.
func (c *Class) Methods() []*Method {
	return append([]*Method(nil), c.methods...)
}

// Statics returns the static method accessors in declaration order.
func (c *Class) Statics() []*StaticMethod {
	return append([]*StaticMethod(nil), c.statics...)
}

// Fields returns the field accessors in declaration order.
func (c *Class) Fields() []*Field {
	return append([]*Field(nil), c.fields...)
}

// Edges returns the declared direct supertype edges, superclass first.
func (c *Class) Edges() []Edge {
	return append([]Edge(nil), c.edges...)
}

// Supertypes returns the declared direct supertypes, superclass first.
func (c *Class) Supertypes() []*Class {
	return append([]*Class(nil), c.parents...)
}

// IsA reports whether name is c itself or one of its declared direct
// supertypes. Ancestors further up are not considered.
func (c *Class) IsA(name string) bool {
	if name == c.decl.Name {
		return true
	}
	for _, e := range c.edges {
		if e.To == name {
			return true
		}
	}
	return false
}

// Verify resolves the class and every declared member under env and
// reports all that the runtime does not know as an *errors.UnresolvedError.
func (c *Class) Verify(env jbind.Env) error {
	if _, err := c.Resolve(env); err != nil {
		return errors.NewUnresolvedError([]string{c.decl.Name})
	}

	var keys []string
	key := func(member, signature string) string {
		return c.decl.Name + "#" + member + "#" + signature
	}
	if c.ctor != nil {
		if _, _, err := c.ctor.Resolve(env); err != nil {
			keys = append(keys, key("<init>", c.ctor.sig))
		}
	}
	for _, f := range c.fields {
		if _, err := f.Resolve(env); err != nil {
			keys = append(keys, key(f.spec.Name, f.sig))
		}
	}
	for _, m := range c.statics {
		if _, _, err := m.Resolve(env); err != nil {
			keys = append(keys, key(m.spec.Name, m.sig))
		}
	}
	for _, m := range c.methods {
		if _, err := m.Resolve(env); err != nil {
			keys = append(keys, key(m.spec.Name, m.sig))
		}
	}
	if len(keys) > 0 {
		return errors.NewUnresolvedError(keys)
	}
	return nil
}

func logResolved(class, member, signature string, att, prev jbind.AttachmentID) {
	l := Logger()
	if ce := l.Check(zap.DebugLevel, "resolved"); ce != nil {
		ce.Write(
			zap.String("class", class),
			zap.String("member", member),
			zap.String("signature", signature),
			zap.Uint64("attachment", uint64(att)),
			zap.Bool("reresolved", prev != 0 && prev != att))
	}
}
