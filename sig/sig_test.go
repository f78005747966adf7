package sig

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Void, "V"},
		{Boolean, "Z"},
		{Byte, "B"},
		{Char, "C"},
		{Short, "S"},
		{Int, "I"},
		{Long, "J"},
		{Float, "F"},
		{Double, "D"},
		{Object("java/lang/String"), "Ljava/lang/String;"},
		{Array(Byte), "[B"},
		{Array(Array(Object("java/lang/Object"))), "[[Ljava/lang/Object;"},
	}

	for _, tt := range tests {
		if got := tt.typ.Signature(); got != tt.want {
			t.Errorf("Signature(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestSignature_Stable(t *testing.T) {
	first := Object("java/lang/String").Signature()
	second := Object("java/lang/String").Signature()
	if first != second {
		t.Fatalf("signature changed between calls: %q vs %q", first, second)
	}
	if first != "Ljava/lang/String;" {
		t.Fatalf("unexpected signature %q", first)
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		ret    Type
		params []Type
		want   string
	}{
		{Void, nil, "()V"},
		{Boolean, []Type{Object("java/lang/String")}, "(Ljava/lang/String;)Z"},
		{Void, []Type{Long, Int}, "(JI)V"},
		{Object("java/lang/String"), nil, "()Ljava/lang/String;"},
		{Int, []Type{Array(Char), Int, Int}, "([CII)I"},
	}

	for _, tt := range tests {
		if got := Method(tt.ret, tt.params...); got != tt.want {
			t.Errorf("Method = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, desc := range []string{"Z", "B", "C", "S", "I", "J", "F", "D", "Ljava/lang/String;", "[B", "[[Ljava/lang/Object;"} {
		typ, err := Parse(desc)
		if err != nil {
			t.Fatalf("Parse(%q): %v", desc, err)
		}
		if got := typ.Signature(); got != desc {
			t.Errorf("Parse(%q).Signature() = %q", desc, got)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, desc := range []string{"", "V", "X", "Ljava/lang/String", "L;", "[", "II", "[V",
		"Ljava.lang.String;", "L[I;", "La//b;", "L/a;", "[Ljava.lang.Object;"} {
		_, err := Parse(desc)
		if err == nil {
			t.Errorf("Parse(%q) should fail", desc)
			continue
		}
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Kind != errors.KindInvalidSignature {
			t.Errorf("Parse(%q): unexpected error %v", desc, err)
		}
	}
}

func TestParseMethod(t *testing.T) {
	params, ret, err := ParseMethod("(Ljava/lang/String;[IJ)Ljava/lang/Object;")
	if err != nil {
		t.Fatalf("ParseMethod: %v", err)
	}
	if len(params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(params))
	}
	if !params[0].Equal(Object("java/lang/String")) {
		t.Errorf("param 0 = %s", params[0])
	}
	if !params[1].Equal(Array(Int)) {
		t.Errorf("param 1 = %s", params[1])
	}
	if !params[2].Equal(Long) {
		t.Errorf("param 2 = %s", params[2])
	}
	if !ret.Equal(Object("java/lang/Object")) {
		t.Errorf("return = %s", ret)
	}

	if got := Method(ret, params...); got != "(Ljava/lang/String;[IJ)Ljava/lang/Object;" {
		t.Errorf("round trip = %q", got)
	}
}

func TestParseMethod_Invalid(t *testing.T) {
	for _, desc := range []string{"", "V", "(I", "(V)V", "(I)", "(I)VV", "(Q)V",
		"(Ljava.lang.String;)V", "()L[I;", "(IL[Ljava/lang/String;)V", "(La/b/;)Z"} {
		if _, _, err := ParseMethod(desc); err == nil {
			t.Errorf("ParseMethod(%q) should fail", desc)
		}
	}
}

func TestValidClassName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"java/lang/String", true},
		{"Foo", true},
		{"java/util/Map$Entry", true},
		{"", false},
		{"java.lang.String", false},
		{"[I", false},
		{"a;b", false},
		{"a//b", false},
		{"/a", false},
		{"a/", false},
	}
	for _, tt := range tests {
		if got := ValidClassName(tt.name); got != tt.want {
			t.Errorf("Expected ValidClassName(%q) = %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestCountParams(t *testing.T) {
	tests := []struct {
		desc string
		want int
	}{
		{"()V", 0},
		{"(I)V", 1},
		{"(JI)V", 2},
		{"([[Ljava/lang/Object;Z)V", 2},
	}
	for _, tt := range tests {
		got, err := CountParams(tt.desc)
		if err != nil {
			t.Fatalf("CountParams(%q): %v", tt.desc, err)
		}
		if got != tt.want {
			t.Errorf("CountParams(%q) = %d, want %d", tt.desc, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	if got := Array(Object("java/lang/String")).String(); got != "java.lang.String[]" {
		t.Errorf("String() = %q", got)
	}
	if got := Int.String(); got != "int" {
		t.Errorf("String() = %q", got)
	}
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		typ  Type
		want jbind.Kind
	}{
		{Void, jbind.KindVoid},
		{Boolean, jbind.KindBoolean},
		{Char, jbind.KindChar},
		{Double, jbind.KindDouble},
		{Object("java/lang/Object"), jbind.KindObject},
		{Array(Int), jbind.KindObject},
	}
	for _, tt := range tests {
		if got := tt.typ.ValueKind(); got != tt.want {
			t.Errorf("ValueKind(%s) = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestKeyword(t *testing.T) {
	typ, ok := Keyword("long")
	if !ok || !typ.Equal(Long) {
		t.Fatalf("Keyword(long) = %s, %v", typ, ok)
	}
	if _, ok := Keyword("String"); ok {
		t.Fatal("Keyword(String) should not match")
	}
}
