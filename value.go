package jbind

import "math"

// Kind is the tag of a Value.
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
)

var kindNames = [...]string{
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
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// Value is the runtime's tagged value union.
// Primitive payloads are stored as raw bits; objects as a reference.
type Value struct {
	Kind Kind
	bits uint64
	ref  Object
}

// Void is the value of a call returning nothing.
var Void = Value{}

func BoolValue(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{Kind: KindBoolean, bits: b}
}

func ByteValue(v int8) Value { return Value{Kind: KindByte, bits: uint64(uint8(v))} }
func CharValue(v uint16) Value { return Value{Kind: KindChar, bits: uint64(v)} }
func ShortValue(v int16) Value { return Value{Kind: KindShort, bits: uint64(uint16(v))} }
func IntValue(v int32) Value { return Value{Kind: KindInt, bits: uint64(uint32(v))} }
func LongValue(v int64) Value { return Value{Kind: KindLong, bits: uint64(v)} }
func FloatValue(v float32) Value { return Value{Kind: KindFloat, bits: uint64(math.Float32bits(v))} }
func DoubleValue(v float64) Value {
	return Value{Kind: KindDouble, bits: math.Float64bits(v)}
}

// ObjectValue wraps a reference under the object tag. Null is allowed.
func ObjectValue(obj Object) Value { return Value{Kind: KindObject, ref: obj} }

func (v Value) Bool() bool { return v.bits != 0 }
func (v Value) Byte() int8 { return int8(uint8(v.bits)) }
func (v Value) Char() uint16 { return uint16(v.bits) }
func (v Value) Short() int16 { return int16(uint16(v.bits)) }
func (v Value) Int() int32 { return int32(uint32(v.bits)) }
func (v Value) Long() int64 { return int64(v.bits) }
func (v Value) Float() float32 { return math.Float32frombits(uint32(v.bits)) }
func (v Value) Double() float64 { return math.Float64frombits(v.bits) }
func (v Value) Object() Object { return v.ref }
func (v Value) IsNull() bool { return v.Kind == KindObject && v.ref == Null }
func (v Value) Bits() uint64 { return v.bits }
