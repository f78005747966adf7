package sig

import (
	"strings"

	"github.com/wippyai/jbind"
)

// Kind is the shape of a Type.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
	KindArray
)

var descriptors = [...]string{
	KindVoid:    "V",
	KindBoolean: "Z",
	KindByte:    "B",
	KindChar:    "C",
	KindShort:   "S",
	KindInt:     "I",
	KindLong:    "J",
	KindFloat:   "F",
	KindDouble:  "D",
}

var names = [...]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// Type describes a foreign type. Types are immutable values.
type Type struct {
	elem  *Type
	class string
	kind  Kind
}

var (
	Void    = Type{kind: KindVoid}
	Boolean = Type{kind: KindBoolean}
	Byte    = Type{kind: KindByte}
	Char    = Type{kind: KindChar}
	Short   = Type{kind: KindShort}
	Int     = Type{kind: KindInt}
	Long    = Type{kind: KindLong}
	Float   = Type{kind: KindFloat}
	Double  = Type{kind: KindDouble}
)

// Object returns the type of instances of the named class, in slash form
// ("java/lang/String").
func Object(class string) Type {
	return Type{kind: KindObject, class: class}
}

// Array returns the array type with the given element type.
func Array(elem Type) Type {
	e := elem
	return Type{kind: KindArray, elem: &e}
}

func (t Type) Kind() Kind { return t.kind }

// Class returns the class name of an object type, or "" otherwise.
func (t Type) Class() string { return t.class }

// Elem returns the element type of an array type.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Void
	}
	return *t.elem
}

// IsReference reports whether values of t are passed as object references.
func (t Type) IsReference() bool {
	return t.kind == KindObject || t.kind == KindArray
}

// Signature returns the descriptor of t.
func (t Type) Signature() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Type) write(b *strings.Builder) {
	switch t.kind {
	case KindObject:
		b.WriteByte('L')
		b.WriteString(t.class)
		b.WriteByte(';')
	case KindArray:
		b.WriteByte('[')
		t.Elem().write(b)
	default:
		b.WriteString(descriptors[t.kind])
	}
}

// String returns the Java source spelling of t ("java.lang.String[]").
func (t Type) String() string {
	switch t.kind {
	case KindObject:
		return strings.ReplaceAll(t.class, "/", ".")
	case KindArray:
		return t.Elem().String() + "[]"
	default:
		return t.kind.String()
	}
}

// Equal reports whether t and o denote the same type.
func (t Type) Equal(o Type) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindObject:
		return t.class == o.class
	case KindArray:
		return t.Elem().Equal(o.Elem())
	}
	return true
}

// ValueKind returns the tag values of t carry on the wire.
func (t Type) ValueKind() jbind.Kind {
	switch t.kind {
	case KindObject, KindArray:
		return jbind.KindObject
	default:
		// primitive kinds share their ordering with jbind.Kind
		return jbind.Kind(t.kind)
	}
}

// Method returns the method descriptor for the given return and parameter types.
func Method(ret Type, params ...Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range params {
		p.write(&b)
	}
	b.WriteByte(')')
	ret.write(&b)
	return b.String()
}

// Keyword returns the primitive type named by a Java keyword ("int", "void").
func Keyword(name string) (Type, bool) {
	for k := KindVoid; k <= KindDouble; k++ {
		if names[k] == name {
			return Type{kind: k}, true
		}
	}
	return Type{}, false
}
