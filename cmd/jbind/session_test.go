package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wippyai/jbind/decl"
	"github.com/wippyai/jbind/errors"
)

func newTestSession(t *testing.T, props map[string]string) *session {
	t.Helper()
	f, err := decl.Load("../../java/lang/lang.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := newSession(f, props, zap.NewNop())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSession_Lookup(t *testing.T) {
	s := newTestSession(t, nil)

	tests := []struct {
		target  string
		wantSig string
		wantErr bool
	}{
		{"Boolean.parseBoolean", "(Ljava/lang/String;)Z", false},
		{"java.lang.Boolean.logicalAnd", "(ZZ)Z", false},
		{"java/lang/Integer.parseInt", "(Ljava/lang/String;)I", false},
		{"Boolean.valueOf(Z)Ljava/lang/Boolean;", "(Z)Ljava/lang/Boolean;", false},
		{"Boolean.valueOf", "", true},
		{"Boolean.missing", "", true},
		{"Nope.parseBoolean", "", true},
		{"parseBoolean", "", true},
		{"Boolean.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			m, err := s.lookup(tt.target)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.target)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if m.Signature() != tt.wantSig {
				t.Errorf("Expected %s, got %s", tt.wantSig, m.Signature())
			}
		})
	}
}

func TestSession_FindClass(t *testing.T) {
	s := newTestSession(t, nil)

	for _, name := range []string{"java/lang/String", "java.lang.String", "String"} {
		c, err := s.findClass(name)
		if err != nil {
			t.Fatalf("findClass(%q): %v", name, err)
		}
		if c.Name() != "java/lang/String" {
			t.Errorf("findClass(%q) = %s", name, c.Name())
		}
	}
	if _, err := s.findClass("java/util/List"); err == nil {
		t.Error("Expected missing class error")
	}
}

func TestSession_Call(t *testing.T) {
	s := newTestSession(t, map[string]string{"demo.flag": "true"})

	tests := []struct {
		target string
		args   []string
		want   string
	}{
		{"Boolean.parseBoolean", []string{"TRUE"}, "true"},
		{"Boolean.parseBoolean", []string{"null"}, "false"},
		{"Boolean.logicalXor", []string{"true", " false "}, "true"},
		{"Boolean.compare", []string{"false", "true"}, "-1"},
		{"Boolean.getBoolean", []string{"demo.flag"}, "true"},
		{"Boolean.getBoolean", []string{"other.flag"}, "false"},
		{"Boolean.toString", []string{"false"}, "false"},
		{"Integer.parseInt", []string{"-31"}, "-31"},
		{"Integer.toString", []string{"2147483647"}, "2147483647"},
		{"String.valueOf(I)Ljava/lang/String;", []string{"5"}, "5"},
		{"String.valueOf(Ljava/lang/Object;)Ljava/lang/String;", []string{"null"}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+strings.Join(tt.args, ","), func(t *testing.T) {
			got, err := s.CallTarget(tt.target, tt.args)
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	if live := s.vm.Stats().LiveGlobals; live != 0 {
		t.Errorf("Expected argument anchors released, %d live", live)
	}
}

func TestSession_CallErrors(t *testing.T) {
	s := newTestSession(t, nil)

	_, err := s.CallTarget("Integer.parseInt", []string{"12x"})
	if !errors.IsForeignException(err) {
		t.Errorf("Expected foreign exception, got %v", err)
	}

	tests := []struct {
		name   string
		target string
		args   []string
	}{
		{"too few", "Boolean.logicalAnd", []string{"true"}},
		{"too many", "Boolean.parseBoolean", []string{"a", "b"}},
		{"bad boolean", "Boolean.logicalAnd", []string{"true", "maybe"}},
		{"int overflow", "Integer.toString", []string{"2147483648"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CallTarget(tt.target, tt.args); err == nil {
				t.Fatal("Expected error")
			}
		})
	}
}

func TestPrintClasses(t *testing.T) {
	s := newTestSession(t, nil)

	var buf bytes.Buffer
	printClasses(&buf, s.classes, false)
	out := buf.String()

	for _, want := range []string{
		"class java/lang/Boolean Ljava/lang/Boolean;",
		"  extends java/lang/Object",
		"  implements java/lang/Comparable",
		"  new(Z)V",
		"  field value Z",
		"  static parseBoolean(Ljava/lang/String;)Z",
		"interface java/lang/CharSequence",
		"  charAt(I)C",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected listing to contain %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected no escape sequences in unstyled output")
	}
}

func TestParseProps(t *testing.T) {
	got := parseProps("a=1,b=x=y,bad")
	if len(got) != 2 || got["a"] != "1" || got["b"] != "x=y" {
		t.Errorf("Expected two properties, got %v", got)
	}
	if len(parseProps("")) != 0 {
		t.Error("Expected no properties")
	}
}

func TestBrowser_CallFlow(t *testing.T) {
	s := newTestSession(t, nil)
	b := newBrowser(s)

	target := -1
	for i, f := range b.funcs {
		if f.class.Name() == "java/lang/Boolean" && f.method.Name() == "logicalOr" {
			target = i
		}
	}
	if target < 0 {
		t.Fatal("Expected Boolean.logicalOr to be listed")
	}
	for range target {
		b.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if b.cursor != target {
		t.Fatalf("Expected cursor %d, got %d", target, b.cursor)
	}

	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if b.view != viewForm || len(b.form) != 2 {
		t.Fatalf("Expected a form with two inputs, view %d, %d inputs", b.view, len(b.form))
	}
	b.form[0].SetValue("false")
	b.form[1].SetValue("true")
	b.Update(tea.KeyMsg{Type: tea.KeyTab})
	if b.focused != 1 {
		t.Errorf("Expected focus on the second input, got %d", b.focused)
	}

	b.Update(b.call())
	if b.view != viewResult || b.failure != nil || b.output != "true" {
		t.Fatalf("Expected result true, got %q, %v", b.output, b.failure)
	}
	if !strings.Contains(b.View(), "= true") {
		t.Error("Expected the result in the view")
	}

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if b.view != viewMethods {
		t.Error("Expected to return to the method list")
	}
}
