package lang

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/jvmsim"
	"github.com/wippyai/jbind/ref"
)

func attach(t *testing.T) (*jvmsim.VM, *jvmsim.Env) {
	t.Helper()
	vm := jvmsim.MustLoadLang(jvmsim.New())
	env := vm.Attach()
	t.Cleanup(env.Detach)
	return vm, env
}

func str(t *testing.T, env *jvmsim.Env, s string) String {
	t.Helper()
	v, err := NewStringUTF(env, s)
	if err != nil {
		t.Fatalf("NewStringUTF(%q): %v", s, err)
	}
	t.Cleanup(v.Release)
	return v
}

// texter returns a function reading and releasing a string result.
func texter(t *testing.T, env *jvmsim.Env) func(String, error) string {
	return func(s String, err error) string {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer s.Release()
		got, err := s.Text(env)
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		return got
	}
}

func TestDeclarationsVerify(t *testing.T) {
	_, env := attach(t)
	for _, c := range []*bind.Class{
		ObjectClass, ClassClass, SerializableClass, ComparableClass, CharSequenceClass,
		StringClass, NumberClass, BooleanClass, IntegerClass, ThrowableClass,
	} {
		if err := c.Verify(env); err != nil {
			t.Errorf("%s: %v", c.Name(), err)
		}
	}
}

func TestBoolean_EndToEnd(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)

	b, err := NewBoolean(env, true)
	if err != nil {
		t.Fatalf("NewBoolean: %v", err)
	}
	defer b.Release()
	if !b.Anchored() {
		t.Error("Expected constructor result to be anchored")
	}

	v, err := b.BooleanValue(env)
	if err != nil || !v {
		t.Fatalf("BooleanValue = %v, %v", v, err)
	}
	if got := text(b.AsObject().ToString(env)); got != "true" {
		t.Errorf("toString = %q, want true", got)
	}

	if err := b.SetValue(env, false); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if v, err := b.GetValue(env); err != nil || v {
		t.Errorf("GetValue = %v, %v, want false", v, err)
	}

	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := BooleanParseBoolean(env, str(t, env, tt.in))
		if err != nil {
			t.Fatalf("parseBoolean(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseBoolean(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got, err := BooleanParseBoolean(env, nil); err != nil || got {
		t.Errorf("parseBoolean(null) = %v, %v, want false", got, err)
	}

	if r, _ := BooleanLogicalXor(env, true, false); !r {
		t.Error("Expected logicalXor(true, false)")
	}
	if r, _ := BooleanCompare(env, true, false); r != 1 {
		t.Errorf("compare(true, false) = %d, want 1", r)
	}
	if h, _ := BooleanHashCodeOf(env, true); h != 1231 {
		t.Errorf("hashCode(true) = %d, want 1231", h)
	}
}

func TestBoolean_ValueOfCanonical(t *testing.T) {
	_, env := attach(t)

	a, err := BooleanValueOf(env, true)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	b, err := BooleanValueOfString(env, str(t, env, "True"))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	if !bind.SameObject(env, a, b) {
		t.Error("Expected valueOf to return the canonical instance")
	}
	eq, err := a.AsObject().Equals(env, b)
	if err != nil || !eq {
		t.Errorf("equals = %v, %v", eq, err)
	}
	cmp, err := a.CompareTo(env, b)
	if err != nil || cmp != 0 {
		t.Errorf("compareTo = %d, %v", cmp, err)
	}
}

func TestString_Upcasts(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)
	s := str(t, env, "héllo")

	n, err := s.Length(env)
	if err != nil || n != 5 {
		t.Fatalf("length = %d, %v", n, err)
	}
	c, err := s.AsCharSequence().CharAt(env, 1)
	if err != nil || c != 'é' {
		t.Errorf("charAt(1) = %q, %v", rune(c), err)
	}
	if got := text(s.Concat(env, str(t, env, "!"))); got != "héllo!" {
		t.Errorf("concat = %q", got)
	}
	if got := text(s.ToUpperCase(env)); got != "HÉLLO" {
		t.Errorf("toUpperCase = %q", got)
	}
	cmp, err := s.AsComparable().CompareTo(env, str(t, env, "héllo"))
	if err != nil || cmp != 0 {
		t.Errorf("compareTo = %d, %v", cmp, err)
	}

	_, err = s.CharAt(env, 9)
	if !errors.IsForeignException(err) {
		t.Fatalf("Expected foreign exception, got %v", err)
	}
}

func TestString_ValueOf(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)

	if got := text(StringValueOfInt(env, -42)); got != "-42" {
		t.Errorf("valueOf(-42) = %q", got)
	}
	if got := text(StringValueOfBoolean(env, false)); got != "false" {
		t.Errorf("valueOf(false) = %q", got)
	}
	if got := text(StringValueOf(env, nil)); got != "null" {
		t.Errorf("valueOf(null) = %q", got)
	}
	if got := text(BooleanToString(env, true)); got != "true" {
		t.Errorf("Boolean.toString(true) = %q", got)
	}
}

func TestInteger_Hierarchy(t *testing.T) {
	_, env := attach(t)

	i, err := IntegerValueOf(env, 7)
	if err != nil {
		t.Fatal(err)
	}
	defer i.Release()

	// Number is a declared parent, Object is reached in steps.
	l, err := i.AsNumber().LongValue(env)
	if err != nil || l != 7 {
		t.Errorf("longValue = %d, %v", l, err)
	}
	got, err := Describe(env, i.AsNumber().AsObject())
	if err != nil || got != "7" {
		t.Errorf("Describe = %q, %v", got, err)
	}

	parsed, err := IntegerParseInt(env, str(t, env, "-15"))
	if err != nil || parsed != -15 {
		t.Errorf("parseInt = %d, %v", parsed, err)
	}
}

func TestForeignException(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)

	_, err := IntegerParseInt(env, str(t, env, "12x"))
	if !errors.IsForeignException(err) {
		t.Fatalf("Expected foreign exception, got %v", err)
	}

	ex, ok := ThrowableOf(err)
	if !ok {
		t.Fatal("Expected the exception object")
	}
	defer ex.Release()

	msg := text(ex.GetMessage(env))
	if msg != `For input string: "12x"` {
		t.Errorf("getMessage = %q", msg)
	}

	cls, err := ex.AsObject().GetClass(env)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release()
	if name := text(cls.GetName(env)); name != "java.lang.NumberFormatException" {
		t.Errorf("getName = %q", name)
	}

	if _, ok := ThrowableOf(errors.InvalidInput(errors.PhaseCall, "x")); ok {
		t.Error("Expected no exception object in a plain error")
	}
}

func TestThrowable_Constructor(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)

	ex, err := NewThrowable(env, str(t, env, "boom"))
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Release()
	if got := text(ex.GetMessage(env)); got != "boom" {
		t.Errorf("getMessage = %q", got)
	}
}

func TestClass_Mirror(t *testing.T) {
	_, env := attach(t)
	text := texter(t, env)
	s := str(t, env, "x")

	cls, err := s.AsObject().GetClass(env)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release()

	if name := text(cls.GetSimpleName(env)); name != "String" {
		t.Errorf("getSimpleName = %q", name)
	}
	inst, err := cls.IsInstance(env, s)
	if err != nil || !inst {
		t.Errorf("isInstance = %v, %v", inst, err)
	}
	super, err := cls.GetSuperclass(env)
	if err != nil {
		t.Fatal(err)
	}
	defer super.Release()
	if name := text(super.GetName(env)); name != "java.lang.Object" {
		t.Errorf("superclass = %q", name)
	}
}

func TestResolution_CachedPerAttachment(t *testing.T) {
	vm, env := attach(t)
	s := str(t, env, "true")

	if _, err := BooleanParseBoolean(env, s); err != nil {
		t.Fatal(err)
	}
	before := vm.Stats().Lookups()
	for range 10 {
		if _, err := BooleanParseBoolean(env, s); err != nil {
			t.Fatal(err)
		}
	}
	if after := vm.Stats().Lookups(); after != before {
		t.Errorf("Expected no lookups on repeated calls, got %d", after-before)
	}

	// s is anchored, so it is usable from a second attachment, which
	// re-resolves once.
	other := vm.Attach()
	defer other.Detach()
	if _, err := BooleanParseBoolean(other, s); err != nil {
		t.Fatal(err)
	}
	if vm.Stats().Lookups() == before {
		t.Error("Expected re-resolution on a new attachment")
	}
	if !booleanStaticParseBoolean.Cached(other.AttachmentID()) {
		t.Error("Expected the slot to hold the new attachment")
	}
}

func TestResolution_ConcurrentAttachments(t *testing.T) {
	vm := jvmsim.MustLoadLang(jvmsim.New())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env := vm.Attach()
			defer env.Detach()
			for range 50 {
				b, err := NewBoolean(env, true)
				if err != nil {
					errs <- err
					return
				}
				v, err := b.BooleanValue(env)
				b.Release()
				if err != nil {
					errs <- err
					return
				}
				if !v {
					errs <- errors.InvalidInput(errors.PhaseCall, "booleanValue returned false")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	if live := vm.Stats().LiveGlobals; live != 0 {
		t.Errorf("Expected all anchors released, %d live", live)
	}
}

func TestNilReceiver(t *testing.T) {
	_, env := attach(t)

	var b Boolean
	if _, err := b.BooleanValue(env); err == nil {
		t.Fatal("Expected error for a null receiver")
	}
	var s String
	if _, err := s.Text(env); err == nil {
		t.Error("Expected error reading a null string")
	}
	got, err := Describe(env, nil)
	if err != nil || got != "null" {
		t.Errorf("Describe(nil) = %q, %v", got, err)
	}
}

func TestDeadArguments(t *testing.T) {
	_, env := attach(t)

	released, err := NewStringUTF(env, "true")
	if err != nil {
		t.Fatal(err)
	}
	released.Release()

	scope := ref.NewScope(env)
	obj, err := env.NewStringUTF("true")
	if err != nil {
		t.Fatal(err)
	}
	stale := bind.Wrap[String](bind.NewHandle(scope.Local(obj)))
	scope.Close()

	b, err := NewBoolean(env, true)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	kind := func(err error) errors.Kind {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			return ""
		}
		return e.Kind
	}

	tests := []struct {
		name string
		call func() error
		want errors.Kind
	}{
		{"static argument", func() error {
			_, err := BooleanParseBoolean(env, released)
			return err
		}, errors.KindReleased},
		{"instance argument", func() error {
			_, err := b.AsObject().Equals(env, released)
			return err
		}, errors.KindReleased},
		{"stale local argument", func() error {
			_, err := BooleanParseBoolean(env, stale)
			return err
		}, errors.KindStaleReference},
		{"constructor argument", func() error {
			_, err := NewThrowable(env, released)
			return err
		}, errors.KindReleased},
		{"describe", func() error {
			_, err := Describe(env, released)
			return err
		}, errors.KindReleased},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("Expected a dead reference argument to be rejected")
			}
			if got := kind(err); got != tt.want {
				t.Errorf("Expected %s, got %v", tt.want, err)
			}
		})
	}

	// A nil interface is still null.
	if got, err := BooleanParseBoolean(env, nil); err != nil || got {
		t.Errorf("parseBoolean(null) = %v, %v", got, err)
	}
}

func TestForeignException_NoLocalLeak(t *testing.T) {
	_, env := attach(t)
	s := str(t, env, "12x")

	before := env.LocalRefs()
	for range 100 {
		if _, err := IntegerParseInt(env, s); !errors.IsForeignException(err) {
			t.Fatalf("Expected foreign exception, got %v", err)
		}
	}
	if after := env.LocalRefs(); after != before {
		t.Fatalf("Expected no leaked locals, before %d after %d", before, after)
	}
}
