package jvmsim

import (
	"errors"
	"testing"

	"github.com/wippyai/jbind"
)

// callStatic resolves and invokes a static method in one step.
func callStatic(t *testing.T, env *Env, class, name, signature string, ret jbind.Kind, args ...jbind.Value) (jbind.Value, error) {
	t.Helper()
	cls, err := env.FindClass(class)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := env.GetStaticMethodID(cls, name, signature)
	if err != nil {
		t.Fatal(err)
	}
	return env.CallStaticMethod(cls, mid, ret, args)
}

func callVirtual(t *testing.T, env *Env, obj jbind.Object, class, name, signature string, ret jbind.Kind, args ...jbind.Value) (jbind.Value, error) {
	t.Helper()
	cls, err := env.FindClass(class)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := env.GetMethodID(cls, name, signature)
	if err != nil {
		t.Fatal(err)
	}
	return env.CallMethod(obj, mid, ret, args)
}

func str(t *testing.T, env *Env, s string) jbind.Value {
	t.Helper()
	obj, err := env.NewStringUTF(s)
	if err != nil {
		t.Fatal(err)
	}
	return jbind.ObjectValue(obj)
}

func goString(t *testing.T, env *Env, v jbind.Value) string {
	t.Helper()
	s, err := env.GetStringUTF(v.Object())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBoolean_ParseBoolean(t *testing.T) {
	env := newLangVM(t).Attach()

	tests := []struct {
		in   jbind.Value
		want bool
	}{
		{str(t, env, "true"), true},
		{str(t, env, "TRUE"), true},
		{str(t, env, "yes"), false},
		{str(t, env, ""), false},
		{jbind.ObjectValue(jbind.Null), false},
	}

	for _, tt := range tests {
		v, err := callStatic(t, env, "java/lang/Boolean", "parseBoolean", "(Ljava/lang/String;)Z", jbind.KindBoolean, tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if v.Bool() != tt.want {
			t.Errorf("Expected %v for %v", tt.want, tt.in)
		}
	}
}

func TestBoolean_Statics(t *testing.T) {
	env := newLangVM(t).Attach()
	const class = "java/lang/Boolean"
	yes, no := jbind.BoolValue(true), jbind.BoolValue(false)

	if v, _ := callStatic(t, env, class, "logicalXor", "(ZZ)Z", jbind.KindBoolean, yes, no); !v.Bool() {
		t.Error("Expected true ^ false")
	}
	if v, _ := callStatic(t, env, class, "logicalOr", "(ZZ)Z", jbind.KindBoolean, no, no); v.Bool() {
		t.Error("Expected false | false to be false")
	}
	if v, _ := callStatic(t, env, class, "compare", "(ZZ)I", jbind.KindInt, yes, no); v.Int() != 1 {
		t.Errorf("Expected 1, got %d", v.Int())
	}
	if v, _ := callStatic(t, env, class, "hashCode", "(Z)I", jbind.KindInt, yes); v.Int() != 1231 {
		t.Errorf("Expected 1231, got %d", v.Int())
	}
	v, err := callStatic(t, env, class, "toString", "(Z)Ljava/lang/String;", jbind.KindObject, no)
	if err != nil || goString(t, env, v) != "false" {
		t.Fatalf("Expected \"false\", got %v", err)
	}
}

func TestBoolean_GetBoolean(t *testing.T) {
	vm := newLangVM(t).WithProperties(map[string]string{"feature.on": "True"})
	env := vm.Attach()

	v, _ := callStatic(t, env, "java/lang/Boolean", "getBoolean", "(Ljava/lang/String;)Z", jbind.KindBoolean, str(t, env, "feature.on"))
	if !v.Bool() {
		t.Error("Expected feature.on to be true")
	}
	v, _ = callStatic(t, env, "java/lang/Boolean", "getBoolean", "(Ljava/lang/String;)Z", jbind.KindBoolean, str(t, env, "feature.off"))
	if v.Bool() {
		t.Error("Expected missing property to be false")
	}
}

func TestBoolean_ValueOfCanonical(t *testing.T) {
	env := newLangVM(t).Attach()
	a, _ := callStatic(t, env, "java/lang/Boolean", "valueOf", "(Z)Ljava/lang/Boolean;", jbind.KindObject, jbind.BoolValue(true))
	b, _ := callStatic(t, env, "java/lang/Boolean", "valueOf", "(Ljava/lang/String;)Ljava/lang/Boolean;", jbind.KindObject, str(t, env, "true"))
	if !env.IsSameObject(a.Object(), b.Object()) {
		t.Fatal("Expected canonical TRUE instance")
	}

	v, err := callVirtual(t, env, a.Object(), "java/lang/Boolean", "booleanValue", "()Z", jbind.KindBoolean)
	if err != nil || !v.Bool() {
		t.Fatalf("Expected true, got %v", err)
	}
}

func TestInteger_ParseInt(t *testing.T) {
	env := newLangVM(t).Attach()

	v, err := callStatic(t, env, "java/lang/Integer", "parseInt", "(Ljava/lang/String;)I", jbind.KindInt, str(t, env, "-42"))
	if err != nil || v.Int() != -42 {
		t.Fatalf("Expected -42, got %d, %v", v.Int(), err)
	}

	_, err = callStatic(t, env, "java/lang/Integer", "parseInt", "(Ljava/lang/String;)I", jbind.KindInt, str(t, env, "x"))
	var exc *jbind.Exception
	if !errors.As(err, &exc) {
		t.Fatalf("Expected exception, got %v", err)
	}
	if exc.Class != "java.lang.NumberFormatException" || exc.Message != `For input string: "x"` {
		t.Fatalf("Unexpected exception %v", exc)
	}
	if exc.Object == jbind.Null {
		t.Fatal("Expected thrown object reference")
	}

	msg, err := callVirtual(t, env, exc.Object, "java/lang/Throwable", "getMessage", "()Ljava/lang/String;", jbind.KindObject)
	if err != nil || goString(t, env, msg) != exc.Message {
		t.Fatalf("Expected getMessage to match, got %v", err)
	}

	_, err = callStatic(t, env, "java/lang/Integer", "parseInt", "(Ljava/lang/String;)I", jbind.KindInt, str(t, env, "2147483648"))
	if !errors.As(err, &exc) {
		t.Fatal("Expected overflow to throw")
	}
}

func TestString_Methods(t *testing.T) {
	env := newLangVM(t).Attach()
	s := str(t, env, "héllo")
	const class = "java/lang/String"

	if v, _ := callVirtual(t, env, s.Object(), class, "length", "()I", jbind.KindInt); v.Int() != 5 {
		t.Errorf("Expected length 5, got %d", v.Int())
	}
	if v, _ := callVirtual(t, env, s.Object(), class, "charAt", "(I)C", jbind.KindChar, jbind.IntValue(1)); v.Char() != 'é' {
		t.Errorf("Expected é, got %q", rune(v.Char()))
	}
	_, err := callVirtual(t, env, s.Object(), class, "charAt", "(I)C", jbind.KindChar, jbind.IntValue(9))
	var exc *jbind.Exception
	if !errors.As(err, &exc) || exc.Class != "java.lang.StringIndexOutOfBoundsException" {
		t.Fatalf("Expected StringIndexOutOfBoundsException, got %v", err)
	}

	v, err := callVirtual(t, env, s.Object(), class, "concat", "(Ljava/lang/String;)Ljava/lang/String;", jbind.KindObject, str(t, env, "!"))
	if err != nil || goString(t, env, v) != "héllo!" {
		t.Fatalf("Unexpected concat result: %v", err)
	}

	if v, _ := callVirtual(t, env, str(t, env, "ab").Object(), class, "hashCode", "()I", jbind.KindInt); v.Int() != 3105 {
		t.Errorf("Expected 3105, got %d", v.Int())
	}
	if v, _ := callVirtual(t, env, s.Object(), class, "equals", "(Ljava/lang/Object;)Z", jbind.KindBoolean, str(t, env, "héllo")); !v.Bool() {
		t.Error("Expected equal strings")
	}
}

func TestString_ThroughInterface(t *testing.T) {
	env := newLangVM(t).Attach()
	s := str(t, env, "abc")

	v, err := callVirtual(t, env, s.Object(), "java/lang/CharSequence", "length", "()I", jbind.KindInt)
	if err != nil || v.Int() != 3 {
		t.Fatalf("Expected 3 through CharSequence, got %d, %v", v.Int(), err)
	}
}

func TestObject_ToString(t *testing.T) {
	vm := newLangVM(t)
	env := vm.Attach()
	cls, _ := env.FindClass("java/lang/Object")
	ctor, _ := env.GetMethodID(cls, "<init>", "()V")
	obj, err := env.NewObject(cls, ctor, nil)
	if err != nil {
		t.Fatal(err)
	}

	v, err := callVirtual(t, env, obj, "java/lang/Object", "toString", "()Ljava/lang/String;", jbind.KindObject)
	if err != nil {
		t.Fatal(err)
	}
	o, _ := env.Deref(obj)
	if got := goString(t, env, v); got != identityString(o) {
		t.Fatalf("Expected %q, got %q", identityString(o), got)
	}

	_, err = callVirtual(t, env, obj, "java/lang/Object", "wait", "(JI)V", jbind.KindVoid, jbind.LongValue(1), jbind.IntValue(0))
	var exc *jbind.Exception
	if !errors.As(err, &exc) || exc.Class != "java.lang.IllegalMonitorStateException" {
		t.Fatalf("Expected IllegalMonitorStateException, got %v", err)
	}
}

func TestClass_Mirror(t *testing.T) {
	env := newLangVM(t).Attach()
	s := str(t, env, "x")
	cls, err := env.GetObjectClass(s.Object())
	if err != nil {
		t.Fatal(err)
	}

	name, err := callVirtual(t, env, cls, "java/lang/Class", "getName", "()Ljava/lang/String;", jbind.KindObject)
	if err != nil || goString(t, env, name) != "java.lang.String" {
		t.Fatalf("Expected java.lang.String, got %v", err)
	}

	super, err := callVirtual(t, env, cls, "java/lang/Class", "getSuperclass", "()Ljava/lang/Class;", jbind.KindObject)
	if err != nil {
		t.Fatal(err)
	}
	superName, _ := callVirtual(t, env, super.Object(), "java/lang/Class", "getName", "()Ljava/lang/String;", jbind.KindObject)
	if goString(t, env, superName) != "java.lang.Object" {
		t.Fatal("Expected java.lang.Object superclass")
	}
}

func TestThrowable_Hierarchy(t *testing.T) {
	vm := newLangVM(t)
	nfe, _ := vm.Class("java/lang/NumberFormatException")
	iae, _ := vm.Class("java/lang/IllegalArgumentException")
	thr, _ := vm.Class("java/lang/Throwable")
	if !nfe.IsSubclassOf(iae) || !nfe.IsSubclassOf(thr) {
		t.Fatal("Expected NumberFormatException under IllegalArgumentException")
	}
}
