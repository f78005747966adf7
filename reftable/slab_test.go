package reftable

import (
	"errors"
	"sync"
	"testing"
)

func TestSlab_Basic(t *testing.T) {
	s := NewSlab[string]()

	h, err := s.Create("test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := s.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	val, ok = s.Delete(h)
	if !ok {
		t.Fatal("Delete failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	if _, ok := s.Get(h); ok {
		t.Fatal("Expected Get to fail after Delete")
	}
	if _, ok := s.Delete(h); ok {
		t.Fatal("Expected double Delete to fail")
	}
}

func TestSlab_StaleHandleAfterReuse(t *testing.T) {
	s := NewSlab[int]()

	h1, _ := s.Create(1)
	s.Delete(h1)
	h2, _ := s.Create(2)

	if h1 == h2 {
		t.Fatal("Reused slot must produce a different handle")
	}
	if h1.index() != h2.index() {
		t.Fatal("Expected slot reuse")
	}
	if _, ok := s.Get(h1); ok {
		t.Fatal("Stale handle must not resolve to the new value")
	}
	if v, ok := s.Get(h2); !ok || v != 2 {
		t.Fatalf("Expected 2, got %v (%v)", v, ok)
	}
}

func TestSlab_InvalidHandles(t *testing.T) {
	s := NewSlab[int]()

	if _, ok := s.Get(0); ok {
		t.Fatal("Handle 0 must be invalid")
	}
	if _, ok := s.Get(makeHandle(99, 0)); ok {
		t.Fatal("Out of range handle must be invalid")
	}
	if _, ok := s.Delete(0); ok {
		t.Fatal("Delete of handle 0 must fail")
	}
}

func TestSlab_LenAndEach(t *testing.T) {
	s := NewSlab[int]()
	h1, _ := s.Create(1)
	s.Create(2)
	s.Create(3)
	s.Delete(h1)

	if s.Len() != 2 {
		t.Fatalf("Expected Len() == 2, got %d", s.Len())
	}

	sum := 0
	s.Each(func(_ Handle, v int) bool {
		sum += v
		return true
	})
	if sum != 5 {
		t.Fatalf("Expected sum 5, got %d", sum)
	}
}

func TestSlab_Close(t *testing.T) {
	s := NewSlab[int]()
	s.Create(1)
	s.Create(2)

	remaining := s.Close()
	if len(remaining) != 2 {
		t.Fatalf("Expected 2 remaining values, got %d", len(remaining))
	}

	if _, err := s.Create(3); !errors.Is(err, ErrClosed) {
		t.Fatalf("Expected ErrClosed, got %v", err)
	}
	if s.Close() != nil {
		t.Fatal("Second Close should return nil")
	}
}

func TestSlab_Concurrent(t *testing.T) {
	s := NewSlab[int]()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				h, err := s.Create(g*1000 + i)
				if err != nil {
					t.Errorf("Create: %v", err)
					return
				}
				if v, ok := s.Get(h); !ok || v != g*1000+i {
					t.Errorf("Get(%d) = %v, %v", h, v, ok)
					return
				}
				s.Delete(h)
			}
		}(g)
	}
	wg.Wait()

	if s.Len() != 0 {
		t.Fatalf("Expected empty slab, got %d", s.Len())
	}
}
