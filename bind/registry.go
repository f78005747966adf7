package bind

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/jbind/errors"
)

// Registry holds declared classes by foreign name. Supertypes must be
// declared before their subtypes, which keeps the hierarchy acyclic.
type Registry struct {
	classes map[string]*Class
	order   []*Class
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by generated bindings.
func Default() *Registry {
	return defaultRegistry
}

// Declare validates d and builds its binding.
func (r *Registry) Declare(d Decl) (*Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[d.Name]; exists {
		return nil, errors.Duplicate(errors.PhaseDeclare, d.Name, "")
	}

	parents, edges, err := d.validate(func(name string) (*Class, bool) {
		c, ok := r.classes[name]
		return c, ok
	})
	if err != nil {
		return nil, err
	}

	c := newClass(d, parents, edges)
	r.classes[d.Name] = c
	r.order = append(r.order, c)

	Logger().Debug("declared class",
		zap.String("class", d.Name),
		zap.Int("methods", len(d.Methods)),
		zap.Int("statics", len(d.Static)),
		zap.Int("fields", len(d.Fields)))
	return c, nil
}

// MustDeclare is Declare that panics on error.
func (r *Registry) MustDeclare(d Decl) *Class {
	c, err := r.Declare(d)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a declared class by foreign name.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Classes returns the declared classes in declaration order.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Class(nil), r.order...)
}

// Declare declares d in the default registry.
func Declare(d Decl) (*Class, error) {
	return defaultRegistry.Declare(d)
}

// MustDeclare declares d in the default registry and panics on error.
func MustDeclare(d Decl) *Class {
	return defaultRegistry.MustDeclare(d)
}

// Lookup returns a class from the default registry.
func Lookup(name string) (*Class, bool) {
	return defaultRegistry.Lookup(name)
}
