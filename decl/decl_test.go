package decl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/sig"
)

const langYAML = `
package: lang
classes:
  - name: java/lang/Object
    constructor: {}
    methods:
      - name: toString
        returns: String
      - name: equals
        params: [{name: o, type: Object}]
        returns: boolean
  - name: java/lang/CharSequence
    interface: true
    methods:
      - {name: length, returns: int}
  - name: java/lang/String
    extends: java/lang/Object
    implements: [java/lang/CharSequence]
    methods:
      - {name: length, returns: int}
      - name: concat
        params: [{name: s, type: String}]
        returns: String
  - name: java/lang/Boolean
    extends: java/lang/Object
    constructor:
      params: [{name: value, type: boolean}]
    fields:
      - {name: value, type: boolean}
    static:
      - name: parseBoolean
        params: [{name: s, type: java/lang/String}]
        returns: boolean
      - name: compare
        sig: (ZZ)I
        params: [{name: x}, {name: y}]
`

func TestParse_Valid(t *testing.T) {
	f, err := Parse([]byte(langYAML), "lang.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Package != "lang" || len(f.Classes) != 4 {
		t.Fatalf("Unexpected file %+v", f)
	}

	decls, err := f.Decls()
	if err != nil {
		t.Fatal(err)
	}
	boolean := decls[3]
	if boolean.Extends != "java/lang/Object" || boolean.Constructor == nil {
		t.Fatalf("Unexpected Boolean decl %+v", boolean)
	}
	if got := boolean.Static[0].Signature(); got != "(Ljava/lang/String;)Z" {
		t.Errorf("parseBoolean = %s, want (Ljava/lang/String;)Z", got)
	}
	compare := boolean.Static[1]
	if compare.Signature() != "(ZZ)I" || compare.Params[1].Name != "y" {
		t.Errorf("Unexpected compare %+v", compare)
	}
	if decls[0].Methods[0].Return.Class() != "java/lang/String" {
		t.Error("Expected Go name String to resolve to java/lang/String")
	}
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse([]byte(langYAML), "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(langYAML), "b.yaml")
	if err != nil {
		t.Fatal(err)
	}
	da, _ := a.Decls()
	db, _ := b.Decls()
	for i := range da {
		for j := range da[i].Methods {
			if da[i].Methods[j].Signature() != db[i].Methods[j].Signature() {
				t.Fatalf("Expected identical signatures for %s", da[i].Name)
			}
		}
	}
}

func TestResolveType(t *testing.T) {
	f, err := Parse([]byte(langYAML), "lang.yaml")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"int", "I"},
		{"void", "V"},
		{"double[]", "[D"},
		{"String", "Ljava/lang/String;"},
		{"String[][]", "[[Ljava/lang/String;"},
		{"java/util/List", "Ljava/util/List;"},
	}
	for _, tt := range tests {
		got, err := f.ResolveType(tt.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.in, err)
			continue
		}
		if got.Signature() != tt.want {
			t.Errorf("%s = %s, want %s", tt.in, got.Signature(), tt.want)
		}
	}

	for _, bad := range []string{"Unknown", "void[]", "java.lang.String", "a//b"} {
		if _, err := f.ResolveType(bad); err == nil {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "classes: [", "parsing"},
		{"bad package", "package: 1x\nclasses: [{name: a/B}]", "package"},
		{"no classes", "package: p", "no classes"},
		{"dotted name", "package: p\nclasses: [{name: a.B}]", "invalid class name"},
		{"duplicate class", "package: p\nclasses: [{name: a/B}, {name: a/B}]", "declared twice"},
		{"duplicate go name", "package: p\nclasses: [{name: a/B}, {name: c/B}]", "already used"},
		{"lowercase go name", "package: p\nclasses: [{name: a/B, go: b}]", "exported"},
		{"forward parent", "package: p\nclasses: [{name: a/B, extends: a/C}, {name: a/C}]", "declared earlier"},
		{"unknown type", "package: p\nclasses: [{name: a/B, methods: [{name: m, returns: Nope}]}]", "unknown type"},
		{"untyped param", "package: p\nclasses: [{name: a/B, methods: [{name: m, params: [{name: x}]}]}]", "no type"},
		{"bad descriptor", "package: p\nclasses: [{name: a/B, methods: [{name: m, sig: (X)V}]}]", "invalid_signature"},
		{"descriptor mismatch", "package: p\nclasses: [{name: a/B, methods: [{name: m, sig: ()I, returns: long}]}]", "descriptor"},
		{"import without pkg", "package: p\nimports: [{name: a/X}]\nclasses: [{name: a/B}]", "pkg is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGoNames(t *testing.T) {
	f, err := Parse([]byte(`
package: p
imports:
  - {name: java/lang/Object, pkg: github.com/wippyai/jbind/java/lang}
classes:
  - name: com/example/Outer$Inner
    extends: java/lang/Object
    methods:
      - {name: run}
      - {name: type, go: Kind, returns: int}
`), "p.yaml")
	if err != nil {
		t.Fatal(err)
	}

	c := &f.Classes[0]
	if c.GoName() != "Outer_Inner" {
		t.Errorf("Expected Outer_Inner, got %s", c.GoName())
	}
	if c.Methods[0].GoName() != "Run" || c.Methods[1].GoName() != "Kind" {
		t.Errorf("Unexpected method names %s, %s", c.Methods[0].GoName(), c.Methods[1].GoName())
	}

	ref, ok := f.TypeRef("java/lang/Object")
	if !ok || ref.Go != "Object" || ref.Pkg != "github.com/wippyai/jbind/java/lang" {
		t.Fatalf("Unexpected import ref %+v", ref)
	}
	if ref, ok := f.TypeRef("com/example/Outer$Inner"); !ok || ref.Pkg != "" {
		t.Fatalf("Expected local ref, got %+v", ref)
	}
}

func TestDeclare_WithImports(t *testing.T) {
	base := bind.NewRegistry()
	base.MustDeclare(bind.Decl{Name: "java/lang/Object", Methods: []bind.MethodSpec{{Name: "hashCode", Return: sig.Int}}})
	base.MustDeclare(bind.Decl{Name: "java/lang/Number", Extends: "java/lang/Object"})

	f, err := Parse([]byte(`
package: p
imports:
  - {name: java/lang/Number, pkg: example.com/lang}
classes:
  - name: com/example/Money
    extends: java/lang/Number
    fields:
      - {name: cents, type: long}
`), "p.yaml")
	if err != nil {
		t.Fatal(err)
	}

	reg := bind.NewRegistry()
	classes, err := f.Declare(reg, base)
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 || !classes[0].IsA("java/lang/Number") {
		t.Fatalf("Unexpected classes %v", classes)
	}
	if _, ok := reg.Lookup("java/lang/Object"); !ok {
		t.Fatal("Expected the import's supertypes to be copied")
	}
	if len(reg.Classes()) != 3 {
		t.Fatalf("Expected 3 classes, got %d", len(reg.Classes()))
	}

	if _, err := f.Declare(bind.NewRegistry(), nil); err == nil {
		t.Fatal("Expected missing import to fail without a base registry")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.yaml")
	if err := os.WriteFile(path, []byte(langYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Path() != path {
		t.Errorf("Path = %q, want %q", f.Path(), path)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("Expected error for a missing file")
	}
}
