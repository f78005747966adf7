package ref

import (
	stderrors "errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
	"github.com/wippyai/jbind/jvmsim"
)

func newEnv(t *testing.T) (*jvmsim.VM, *jvmsim.Env) {
	t.Helper()
	vm := jvmsim.MustLoadLang(jvmsim.New())
	env := vm.Attach()
	t.Cleanup(env.Detach)
	return vm, env
}

func newString(t *testing.T, env *jvmsim.Env, s string) jbind.Object {
	t.Helper()
	obj, err := env.NewStringUTF(s)
	if err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestScope_CloseDeletesLocals(t *testing.T) {
	_, env := newEnv(t)
	scope := NewScope(env)

	a := scope.Local(newString(t, env, "a"))
	scope.Local(newString(t, env, "b"))
	if scope.Len() != 2 || env.LocalRefs() != 2 {
		t.Fatalf("Expected 2 locals, got %d/%d", scope.Len(), env.LocalRefs())
	}

	scope.Close()
	if env.LocalRefs() != 0 {
		t.Fatalf("Expected locals deleted on Close, %d remain", env.LocalRefs())
	}
	if a.Object() != jbind.Null {
		t.Fatal("Expected Null from a local after its scope closed")
	}
	if !stderrors.Is(a.Err(), errors.StaleReference("")) {
		t.Fatalf("Expected stale reference error, got %v", a.Err())
	}
	scope.Close()

	late := scope.Local(newString(t, env, "c"))
	if late.Err() == nil {
		t.Fatal("Expected local adopted by a closed scope to be unusable")
	}
}

func TestLocal_Release(t *testing.T) {
	_, env := newEnv(t)
	scope := NewScope(env)
	defer scope.Close()

	l := scope.Local(newString(t, env, "a"))
	l.Release()
	l.Release()
	if env.LocalRefs() != 0 {
		t.Fatal("Expected early release to delete the local")
	}
	if !stderrors.Is(l.Err(), errors.Released("")) {
		t.Fatalf("Expected released error, got %v", l.Err())
	}
	if l.Anchored() {
		t.Fatal("Expected locals not to be anchored")
	}
}

func TestLocal_Promote(t *testing.T) {
	vm, env := newEnv(t)
	scope := NewScope(env)

	l := scope.Local(newString(t, env, "kept"))
	g, err := l.Promote()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Anchored() {
		t.Fatal("Expected promoted reference to be anchored")
	}
	if l.Err() == nil {
		t.Fatal("Expected promotion to consume the local")
	}
	if _, err := l.Promote(); err == nil {
		t.Fatal("Expected second promotion to fail")
	}

	scope.Close()

	other := vm.Attach()
	defer other.Detach()
	s, err := other.GetStringUTF(g.Object())
	if err != nil || s != "kept" {
		t.Fatalf("Expected anchored object usable after scope close, got %q, %v", s, err)
	}

	g.Release()
	if vm.Stats().DeleteGlobalRef != 1 {
		t.Fatalf("Expected one global deletion, got %d", vm.Stats().DeleteGlobalRef)
	}
}

func TestScope_DropsReleasedAndPromoted(t *testing.T) {
	tests := []struct {
		name   string
		finish func(t *testing.T, l *Local)
	}{
		{"release", func(t *testing.T, l *Local) { l.Release() }},
		{"promote", func(t *testing.T, l *Local) {
			g, err := l.Promote()
			if err != nil {
				t.Fatal(err)
			}
			g.Release()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := newEnv(t)
			scope := NewScope(env)
			defer scope.Close()

			keep := scope.Local(newString(t, env, "keep"))
			for i := 0; i < 1000; i++ {
				tt.finish(t, scope.Local(newString(t, env, "x")))
			}
			if len(scope.locals) != 1 || scope.Len() != 1 {
				t.Fatalf("Expected only the live local tracked, got %d entries", len(scope.locals))
			}
			if env.LocalRefs() != 1 {
				t.Fatalf("Expected 1 local reference, got %d", env.LocalRefs())
			}
			if keep.Err() != nil {
				t.Fatalf("Expected remaining local to stay live, got %v", keep.Err())
			}
		})
	}
}

func TestScope_DropOutOfOrder(t *testing.T) {
	_, env := newEnv(t)
	scope := NewScope(env)

	locals := make([]*Local, 5)
	for i := range locals {
		locals[i] = scope.Local(newString(t, env, "x"))
	}
	locals[1].Release()
	locals[4].Release()
	locals[0].Release()
	locals[1].Release()
	if scope.Len() != 2 || env.LocalRefs() != 2 {
		t.Fatalf("Expected 2 live locals, got %d/%d", scope.Len(), env.LocalRefs())
	}
	for _, l := range scope.locals {
		if l != locals[2] && l != locals[3] {
			t.Fatal("Expected only the unreleased locals to remain tracked")
		}
	}
	if !stderrors.Is(locals[0].Err(), errors.Released("")) {
		t.Fatalf("Expected released error, got %v", locals[0].Err())
	}

	scope.Close()
	if env.LocalRefs() != 0 {
		t.Fatalf("Expected locals deleted on Close, %d remain", env.LocalRefs())
	}
	if !stderrors.Is(locals[2].Err(), errors.StaleReference("")) {
		t.Fatalf("Expected stale reference error, got %v", locals[2].Err())
	}
}

func TestPromote_Null(t *testing.T) {
	_, env := newEnv(t)
	g, err := Promote(env, jbind.Null)
	if err != nil || g != nil {
		t.Fatalf("Expected nil global for null, got %v, %v", g, err)
	}
}

func TestGlobal_CloneRelease(t *testing.T) {
	vm, env := newEnv(t)
	g, err := Promote(env, newString(t, env, "x"))
	if err != nil {
		t.Fatal(err)
	}

	c1 := g.Clone()
	c2 := c1.Clone()
	if g.Holders() != 3 {
		t.Fatalf("Expected 3 holders, got %d", g.Holders())
	}
	if c1.Object() != g.Object() {
		t.Fatal("Expected clones to share the anchor")
	}

	g.Release()
	g.Release()
	c1.Release()
	if vm.Stats().DeleteGlobalRef != 0 {
		t.Fatal("Expected anchor to survive while a holder remains")
	}
	if g.Object() != jbind.Null || g.Err() == nil {
		t.Fatal("Expected released holder to be unusable")
	}
	if c2.Err() != nil {
		t.Fatalf("Expected remaining holder usable, got %v", c2.Err())
	}

	c2.Release()
	stats := vm.Stats()
	if stats.DeleteGlobalRef != 1 || stats.LiveGlobals != 0 {
		t.Fatalf("Expected exactly one deletion, got %+v", stats)
	}

	if dead := g.Clone(); dead.Err() == nil {
		t.Fatal("Expected clone of released holder to be released")
	}
}

func TestGlobal_ConcurrentRelease(t *testing.T) {
	vm, env := newEnv(t)
	g, err := Promote(env, newString(t, env, "x"))
	if err != nil {
		t.Fatal(err)
	}

	const n = 64
	holders := make([]*Global, n)
	holders[0] = g
	for i := 1; i < n; i++ {
		holders[i] = g.Clone()
	}

	var wg sync.WaitGroup
	for _, h := range holders {
		wg.Add(1)
		go func(h *Global) {
			defer wg.Done()
			h.Release()
			h.Release()
		}(h)
	}
	wg.Wait()

	if got := vm.Stats().DeleteGlobalRef; got != 1 {
		t.Fatalf("Expected one deletion, got %d", got)
	}
}

type failingVM struct{}

func (failingVM) DeleteGlobalRef(jbind.Object) error {
	return errors.InvalidInput(errors.PhaseRelease, "boom")
}

func TestGlobal_ReleaseErrorLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	NewGlobal(failingVM{}, jbind.Object(1)).Release()

	if logs.Len() != 1 {
		t.Fatalf("Expected one warning, got %d", logs.Len())
	}
}

func TestNilRefs(t *testing.T) {
	var g *Global
	var l *Local
	g.Release()
	l.Release()
	if g.Object() != jbind.Null || l.Object() != jbind.Null {
		t.Fatal("Expected Null from nil refs")
	}
	if g.Err() == nil || l.Err() == nil {
		t.Fatal("Expected errors from nil refs")
	}
}
