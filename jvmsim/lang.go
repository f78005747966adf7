package jvmsim

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/wippyai/jbind"
)

const (
	sigObject  = "Ljava/lang/Object;"
	sigString  = "Ljava/lang/String;"
	sigClass   = "Ljava/lang/Class;"
	sigBoolean = "Ljava/lang/Boolean;"
	sigInteger = "Ljava/lang/Integer;"
)

// LoadLang defines the core java/lang classes: Object, Class, String,
// Boolean, Integer and the common throwables.
func LoadLang(vm *VM) error {
	for _, def := range langClasses() {
		if _, err := vm.DefineClass(def); err != nil {
			return err
		}
	}
	return nil
}

// MustLoadLang is LoadLang that panics on error.
func MustLoadLang(vm *VM) *VM {
	if err := LoadLang(vm); err != nil {
		panic(err)
	}
	return vm
}

func langClasses() []ClassDef {
	defs := []ClassDef{
		objectClass(),
		classClass(),
		{Name: "java/io/Serializable", Interface: true},
		{Name: "java/lang/Comparable", Interface: true, Methods: []MethodDef{
			{Name: "compareTo", Sig: "(" + sigObject + ")I"},
		}},
		{Name: "java/lang/CharSequence", Interface: true, Methods: []MethodDef{
			{Name: "charAt", Sig: "(I)C"},
			{Name: "length", Sig: "()I"},
		}},
		stringClass(),
		{Name: "java/lang/Number", Interfaces: []string{"java/io/Serializable"}, Methods: []MethodDef{
			{Name: "<init>", Sig: "()V", Fn: noop},
			{Name: "intValue", Sig: "()I"},
			{Name: "longValue", Sig: "()J"},
			{Name: "doubleValue", Sig: "()D"},
		}},
		booleanClass(),
		integerClass(),
	}
	return append(defs, throwableClasses()...)
}

func noop(*Env, *Obj, []jbind.Value) (jbind.Value, error) {
	return jbind.Void, nil
}

func dotted(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func returnObj(env *Env, o *Obj) (jbind.Value, error) {
	return jbind.ObjectValue(env.NewLocal(o)), nil
}

func returnString(env *Env, s string) (jbind.Value, error) {
	o, err := env.String(s)
	if err != nil {
		return jbind.Void, err
	}
	return returnObj(env, o)
}

// stringArg reads a String argument. ok is false for null.
func stringArg(env *Env, v jbind.Value) (s string, ok bool, err error) {
	o, err := env.Deref(v.Object())
	if err != nil || o == nil {
		return "", false, err
	}
	s, isString := o.Native.(string)
	if !isString || o.class.Name != stringClassName {
		return "", false, env.Throw("java/lang/ClassCastException",
			fmt.Sprintf("class %s cannot be cast to class java.lang.String", dotted(o.class.Name)))
	}
	return s, true, nil
}

// virtual invokes name+signature on o with dynamic dispatch.
func (e *Env) virtual(o *Obj, name, signature string, args ...jbind.Value) (jbind.Value, error) {
	m := o.class.implementation(memberKey(name, signature))
	if m == nil {
		return jbind.Void, e.Throw("java/lang/AbstractMethodError", o.class.Name+"."+name+signature)
	}
	return m.Fn(e, o, args)
}

// toString renders o through its toString method.
func (e *Env) toString(o *Obj) (string, error) {
	if o == nil {
		return "null", nil
	}
	v, err := e.virtual(o, "toString", "()"+sigString)
	if err != nil {
		return "", err
	}
	s, _, err := stringArg(e, v)
	return s, err
}

func identityString(o *Obj) string {
	return fmt.Sprintf("%s@%x", dotted(o.class.Name), uint32(o.IdentityHash()))
}

func illegalMonitor(env *Env, _ *Obj, _ []jbind.Value) (jbind.Value, error) {
	return jbind.Void, env.Throw("java/lang/IllegalMonitorStateException", "current thread is not owner")
}

func objectClass() ClassDef {
	return ClassDef{
		Name: objectClassName,
		Methods: []MethodDef{
			{Name: "<init>", Sig: "()V", Fn: noop},
			{Name: "equals", Sig: "(" + sigObject + ")Z", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				other, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				return jbind.BoolValue(this == other), nil
			}},
			{Name: "hashCode", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(this.IdentityHash()), nil
			}},
			{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, identityString(this))
			}},
			{Name: "getClass", Sig: "()" + sigClass, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				m, err := env.vm.mirror(this.class)
				if err != nil {
					return jbind.Void, err
				}
				return returnObj(env, m)
			}},
			{Name: "notify", Sig: "()V", Fn: illegalMonitor},
			{Name: "notifyAll", Sig: "()V", Fn: illegalMonitor},
			{Name: "wait", Sig: "()V", Fn: illegalMonitor},
			{Name: "wait", Sig: "(J)V", Fn: illegalMonitor},
			{Name: "wait", Sig: "(JI)V", Fn: illegalMonitor},
		},
	}
}

func mirrored(this *Obj) *Class {
	c, _ := this.Native.(*Class)
	return c
}

func classClass() ClassDef {
	return ClassDef{
		Name: classClassName,
		Methods: []MethodDef{
			{Name: "getName", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, dotted(mirrored(this).Name))
			}},
			{Name: "getSimpleName", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				name := mirrored(this).Name
				return returnString(env, name[strings.LastIndexByte(name, '/')+1:])
			}},
			{Name: "isInterface", Sig: "()Z", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.BoolValue(mirrored(this).Interface), nil
			}},
			{Name: "getSuperclass", Sig: "()" + sigClass, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				c := mirrored(this)
				if c.Interface || c.Super == nil {
					return jbind.ObjectValue(jbind.Null), nil
				}
				m, err := env.vm.mirror(c.Super)
				if err != nil {
					return jbind.Void, err
				}
				return returnObj(env, m)
			}},
			{Name: "isInstance", Sig: "(" + sigObject + ")Z", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				return jbind.BoolValue(o != nil && o.class.IsSubclassOf(mirrored(this))), nil
			}},
			{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				c := mirrored(this)
				prefix := "class "
				if c.Interface {
					prefix = "interface "
				}
				return returnString(env, prefix+dotted(c.Name))
			}},
		},
	}
}

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func javaHash(s string) int32 {
	var h int32
	for _, u := range units(s) {
		h = 31*h + int32(u)
	}
	return h
}

func compareUnits(a, b string) int32 {
	ua, ub := units(a), units(b)
	n := min(len(ua), len(ub))
	for i := 0; i < n; i++ {
		if ua[i] != ub[i] {
			return int32(ua[i]) - int32(ub[i])
		}
	}
	return int32(len(ua) - len(ub))
}

func native(this *Obj) string {
	s, _ := this.Native.(string)
	return s
}

func stringClass() ClassDef {
	return ClassDef{
		Name:       stringClassName,
		Interfaces: []string{"java/io/Serializable", "java/lang/Comparable", "java/lang/CharSequence"},
		Methods: []MethodDef{
			{Name: "<init>", Sig: "()V", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				this.Native = ""
				return jbind.Void, nil
			}},
			{Name: "length", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(int32(len(units(native(this))))), nil
			}},
			{Name: "charAt", Sig: "(I)C", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				u := units(native(this))
				i := args[0].Int()
				if i < 0 || int(i) >= len(u) {
					return jbind.Void, env.Throw("java/lang/StringIndexOutOfBoundsException",
						fmt.Sprintf("Index %d out of bounds for length %d", i, len(u)))
				}
				return jbind.CharValue(u[i]), nil
			}},
			{Name: "isEmpty", Sig: "()Z", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.BoolValue(native(this) == ""), nil
			}},
			{Name: "equals", Sig: "(" + sigObject + ")Z", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				if o == nil || o.class.Name != stringClassName {
					return jbind.BoolValue(false), nil
				}
				return jbind.BoolValue(native(o) == native(this)), nil
			}},
			{Name: "hashCode", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(javaHash(native(this))), nil
			}},
			{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnObj(env, this)
			}},
			{Name: "compareTo", Sig: "(" + sigObject + ")I", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				other, ok, err := stringArg(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				if !ok {
					return jbind.Void, env.Throw("java/lang/NullPointerException", "")
				}
				return jbind.IntValue(compareUnits(native(this), other)), nil
			}},
			{Name: "concat", Sig: "(" + sigString + ")" + sigString, Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				other, ok, err := stringArg(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				if !ok {
					return jbind.Void, env.Throw("java/lang/NullPointerException", "")
				}
				return returnString(env, native(this)+other)
			}},
			{Name: "toUpperCase", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, strings.ToUpper(native(this)))
			}},
			{Name: "toLowerCase", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, strings.ToLower(native(this)))
			}},
			{Name: "valueOf", Sig: "(Z)" + sigString, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.FormatBool(args[0].Bool()))
			}},
			{Name: "valueOf", Sig: "(I)" + sigString, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.Itoa(int(args[0].Int())))
			}},
			{Name: "valueOf", Sig: "(" + sigObject + ")" + sigString, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				s, err := env.toString(o)
				if err != nil {
					return jbind.Void, err
				}
				return returnString(env, s)
			}},
		},
	}
}

// parseBool mirrors Boolean.parseBoolean: true only for "true" in any case.
func parseBool(s string, ok bool) bool {
	return ok && strings.EqualFold(s, "true")
}

func boolField(this *Obj) bool {
	v, _ := this.Get("value")
	return v.Bool()
}

func booleanHash(b bool) int32 {
	if b {
		return 1231
	}
	return 1237
}

func compareBool(x, y bool) int32 {
	switch {
	case x == y:
		return 0
	case x:
		return 1
	default:
		return -1
	}
}

func booleanClass() ClassDef {
	// TRUE and FALSE are canonical per runtime.
	var (
		mu    sync.Mutex
		boxes [2]*Obj
	)
	box := func(env *Env, b bool) (jbind.Value, error) {
		i := 0
		if b {
			i = 1
		}
		mu.Lock()
		if boxes[i] == nil {
			c, ok := env.vm.Class("java/lang/Boolean")
			if !ok {
				mu.Unlock()
				return jbind.Void, fmt.Errorf("java/lang/Boolean not defined")
			}
			o := env.vm.alloc(c)
			o.Set("value", jbind.BoolValue(b))
			boxes[i] = o
		}
		o := boxes[i]
		mu.Unlock()
		return returnObj(env, o)
	}

	bool2 := func(fn func(x, y bool) bool) MethodFunc {
		return func(_ *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
			return jbind.BoolValue(fn(args[0].Bool(), args[1].Bool())), nil
		}
	}

	return ClassDef{
		Name:       "java/lang/Boolean",
		Interfaces: []string{"java/io/Serializable", "java/lang/Comparable"},
		Fields:     []FieldDef{{Name: "value", Sig: "Z"}},
		Methods: []MethodDef{
			{Name: "<init>", Sig: "(Z)V", Fn: func(_ *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				this.Set("value", args[0])
				return jbind.Void, nil
			}},
			{Name: "<init>", Sig: "(" + sigString + ")V", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				s, ok, err := stringArg(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				this.Set("value", jbind.BoolValue(parseBool(s, ok)))
				return jbind.Void, nil
			}},
			{Name: "booleanValue", Sig: "()Z", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.BoolValue(boolField(this)), nil
			}},
			{Name: "compareTo", Sig: "(" + sigBoolean + ")I", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.receiver(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				return jbind.IntValue(compareBool(boolField(this), boolField(o))), nil
			}},
			{Name: "compareTo", Sig: "(" + sigObject + ")I", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.receiver(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				if o.class != this.class {
					return jbind.Void, env.Throw("java/lang/ClassCastException",
						fmt.Sprintf("class %s cannot be cast to class java.lang.Boolean", dotted(o.class.Name)))
				}
				return jbind.IntValue(compareBool(boolField(this), boolField(o))), nil
			}},
			{Name: "equals", Sig: "(" + sigObject + ")Z", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				return jbind.BoolValue(o != nil && o.class == this.class && boolField(o) == boolField(this)), nil
			}},
			{Name: "hashCode", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(booleanHash(boolField(this))), nil
			}},
			{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.FormatBool(boolField(this)))
			}},
			{Name: "compare", Sig: "(ZZ)I", Static: true, Fn: func(_ *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(compareBool(args[0].Bool(), args[1].Bool())), nil
			}},
			{Name: "getBoolean", Sig: "(" + sigString + ")Z", Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				name, ok, err := stringArg(env, args[0])
				if err != nil || !ok {
					return jbind.BoolValue(false), err
				}
				v, ok := env.vm.Property(name)
				return jbind.BoolValue(parseBool(v, ok)), nil
			}},
			{Name: "hashCode", Sig: "(Z)I", Static: true, Fn: func(_ *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(booleanHash(args[0].Bool())), nil
			}},
			{Name: "logicalAnd", Sig: "(ZZ)Z", Static: true, Fn: bool2(func(x, y bool) bool { return x && y })},
			{Name: "logicalOr", Sig: "(ZZ)Z", Static: true, Fn: bool2(func(x, y bool) bool { return x || y })},
			{Name: "logicalXor", Sig: "(ZZ)Z", Static: true, Fn: bool2(func(x, y bool) bool { return x != y })},
			{Name: "parseBoolean", Sig: "(" + sigString + ")Z", Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				s, ok, err := stringArg(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				return jbind.BoolValue(parseBool(s, ok)), nil
			}},
			{Name: "toString", Sig: "(Z)" + sigString, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.FormatBool(args[0].Bool()))
			}},
			{Name: "valueOf", Sig: "(Z)" + sigBoolean, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return box(env, args[0].Bool())
			}},
			{Name: "valueOf", Sig: "(" + sigString + ")" + sigBoolean, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				s, ok, err := stringArg(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				return box(env, parseBool(s, ok))
			}},
		},
	}
}

func intField(this *Obj) int32 {
	v, _ := this.Get("value")
	return v.Int()
}

func parseInt(env *Env, v jbind.Value) (int32, error) {
	s, ok, err := stringArg(env, v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, env.Throw("java/lang/NumberFormatException", "Cannot parse null string: null")
	}
	n, perr := strconv.ParseInt(s, 10, 32)
	if perr != nil {
		return 0, env.Throw("java/lang/NumberFormatException", fmt.Sprintf("For input string: %q", s))
	}
	return int32(n), nil
}

func integerClass() ClassDef {
	box := func(env *Env, n int32) (jbind.Value, error) {
		c, ok := env.vm.Class("java/lang/Integer")
		if !ok {
			return jbind.Void, fmt.Errorf("java/lang/Integer not defined")
		}
		o := env.vm.alloc(c)
		o.Set("value", jbind.IntValue(n))
		return returnObj(env, o)
	}

	return ClassDef{
		Name:       "java/lang/Integer",
		Super:      "java/lang/Number",
		Interfaces: []string{"java/lang/Comparable"},
		Fields:     []FieldDef{{Name: "value", Sig: "I"}},
		Methods: []MethodDef{
			{Name: "<init>", Sig: "(I)V", Fn: func(_ *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				this.Set("value", args[0])
				return jbind.Void, nil
			}},
			{Name: "intValue", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(intField(this)), nil
			}},
			{Name: "longValue", Sig: "()J", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.LongValue(int64(intField(this))), nil
			}},
			{Name: "doubleValue", Sig: "()D", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.DoubleValue(float64(intField(this))), nil
			}},
			{Name: "compareTo", Sig: "(" + sigInteger + ")I", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.receiver(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				x, y := intField(this), intField(o)
				switch {
				case x < y:
					return jbind.IntValue(-1), nil
				case x > y:
					return jbind.IntValue(1), nil
				}
				return jbind.IntValue(0), nil
			}},
			{Name: "equals", Sig: "(" + sigObject + ")Z", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
				o, err := env.Deref(args[0].Object())
				if err != nil {
					return jbind.Void, err
				}
				return jbind.BoolValue(o != nil && o.class == this.class && intField(o) == intField(this)), nil
			}},
			{Name: "hashCode", Sig: "()I", Fn: func(_ *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return jbind.IntValue(intField(this)), nil
			}},
			{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.Itoa(int(intField(this))))
			}},
			{Name: "parseInt", Sig: "(" + sigString + ")I", Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				n, err := parseInt(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				return jbind.IntValue(n), nil
			}},
			{Name: "valueOf", Sig: "(I)" + sigInteger, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return box(env, args[0].Int())
			}},
			{Name: "valueOf", Sig: "(" + sigString + ")" + sigInteger, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				n, err := parseInt(env, args[0])
				if err != nil {
					return jbind.Void, err
				}
				return box(env, n)
			}},
			{Name: "toString", Sig: "(I)" + sigString, Static: true, Fn: func(env *Env, _ *Obj, args []jbind.Value) (jbind.Value, error) {
				return returnString(env, strconv.Itoa(int(args[0].Int())))
			}},
		},
	}
}

// throwableHierarchy lists throwables in definition order with their superclass.
var throwableHierarchy = [][2]string{
	{"java/lang/Exception", "java/lang/Throwable"},
	{"java/lang/Error", "java/lang/Throwable"},
	{"java/lang/RuntimeException", "java/lang/Exception"},
	{"java/lang/ReflectiveOperationException", "java/lang/Exception"},
	{"java/lang/InstantiationException", "java/lang/ReflectiveOperationException"},
	{"java/lang/IllegalArgumentException", "java/lang/RuntimeException"},
	{"java/lang/NumberFormatException", "java/lang/IllegalArgumentException"},
	{"java/lang/IllegalStateException", "java/lang/RuntimeException"},
	{"java/lang/IllegalMonitorStateException", "java/lang/RuntimeException"},
	{"java/lang/NullPointerException", "java/lang/RuntimeException"},
	{"java/lang/ClassCastException", "java/lang/RuntimeException"},
	{"java/lang/ArithmeticException", "java/lang/RuntimeException"},
	{"java/lang/IndexOutOfBoundsException", "java/lang/RuntimeException"},
	{"java/lang/StringIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/LinkageError", "java/lang/Error"},
	{"java/lang/IncompatibleClassChangeError", "java/lang/LinkageError"},
	{"java/lang/AbstractMethodError", "java/lang/IncompatibleClassChangeError"},
}

func throwableCtors() []MethodDef {
	return []MethodDef{
		{Name: "<init>", Sig: "()V", Fn: noop},
		{Name: "<init>", Sig: "(" + sigString + ")V", Fn: func(env *Env, this *Obj, args []jbind.Value) (jbind.Value, error) {
			msg, ok, err := stringArg(env, args[0])
			if err != nil {
				return jbind.Void, err
			}
			if ok {
				this.Native = msg
			}
			return jbind.Void, nil
		}},
	}
}

func throwableClasses() []ClassDef {
	root := ClassDef{
		Name:       "java/lang/Throwable",
		Interfaces: []string{"java/io/Serializable"},
		Methods: append(throwableCtors(),
			MethodDef{Name: "getMessage", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				msg, ok := this.Native.(string)
				if !ok {
					return jbind.ObjectValue(jbind.Null), nil
				}
				return returnString(env, msg)
			}},
			MethodDef{Name: "toString", Sig: "()" + sigString, Fn: func(env *Env, this *Obj, _ []jbind.Value) (jbind.Value, error) {
				s := dotted(this.class.Name)
				if msg, ok := this.Native.(string); ok {
					s += ": " + msg
				}
				return returnString(env, s)
			}},
		),
	}

	defs := []ClassDef{root}
	for _, pair := range throwableHierarchy {
		defs = append(defs, ClassDef{Name: pair[0], Super: pair[1], Methods: throwableCtors()})
	}
	return defs
}
