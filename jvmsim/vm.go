package jvmsim

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/reftable"
)

const (
	objectClassName = "java/lang/Object"
	classClassName  = "java/lang/Class"
	stringClassName = "java/lang/String"

	// globalBit marks a global reference; locals carry their attachment
	// identity in the upper 32 bits instead.
	globalBit = uint64(1) << 63
)

// VM is a simulated runtime. It is safe for concurrent use.
type VM struct {
	classes    map[string]*Class
	classList  []*Class
	methods    []*Method
	fields     []*Field
	properties map[string]string
	globals    *reftable.Table[*Obj]
	log        *zap.Logger
	stats      counters
	nextID     atomic.Int32
	mu         sync.RWMutex
}

// nextAttachment numbers attachments process-wide. Identities are never
// reused, even across runtimes.
var nextAttachment atomic.Uint64

// New creates an empty runtime with no classes defined.
func New() *VM {
	return &VM{
		classes:    make(map[string]*Class),
		properties: make(map[string]string),
		globals:    reftable.New[*Obj](reftable.Global),
		log:        zap.NewNop(),
	}
}

// WithLogger sets the logger used for exceptions and reference errors.
func (vm *VM) WithLogger(l *zap.Logger) *VM {
	vm.log = l
	return vm
}

// WithProperties sets system properties visible to method bodies.
func (vm *VM) WithProperties(props map[string]string) *VM {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for k, v := range props {
		vm.properties[k] = v
	}
	return vm
}

// Property returns a system property.
func (vm *VM) Property(name string) (string, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	v, ok := vm.properties[name]
	return v, ok
}

// Subscribe registers an observer of global reference events.
func (vm *VM) Subscribe(o reftable.Observer) {
	vm.globals.Subscribe(o)
}

// Unsubscribe removes an observer of global reference events.
func (vm *VM) Unsubscribe(o reftable.Observer) {
	vm.globals.Unsubscribe(o)
}

// DefineClass adds a class. The superclass and interfaces must already be defined.
func (vm *VM) DefineClass(def ClassDef) (*Class, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("define class: empty name")
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, exists := vm.classes[def.Name]; exists {
		return nil, fmt.Errorf("define class %s: already defined", def.Name)
	}

	c := &Class{
		Name:      def.Name,
		Interface: def.Interface,
		methods:   make(map[string]*Method),
		statics:   make(map[string]*Method),
		fields:    make(map[string]*Field),
	}

	superName := def.Super
	if superName == "" && !def.Interface && def.Name != objectClassName {
		superName = objectClassName
	}
	if superName != "" {
		super, ok := vm.classes[superName]
		if !ok {
			return nil, fmt.Errorf("define class %s: superclass %s not defined", def.Name, superName)
		}
		c.Super = super
	}
	for _, name := range def.Interfaces {
		iface, ok := vm.classes[name]
		if !ok || !iface.Interface {
			return nil, fmt.Errorf("define class %s: interface %s not defined", def.Name, name)
		}
		c.Interfaces = append(c.Interfaces, iface)
	}

	for _, fd := range def.Fields {
		f, err := newField(c, fd)
		if err != nil {
			return nil, fmt.Errorf("define class %s: field %s: %w", def.Name, fd.Name, err)
		}
		key := memberKey(fd.Name, fd.Sig)
		if _, dup := c.fields[key]; dup {
			return nil, fmt.Errorf("define class %s: duplicate field %s", def.Name, fd.Name)
		}
		f.index = len(vm.fields)
		vm.fields = append(vm.fields, f)
		c.fields[key] = f
	}

	for _, md := range def.Methods {
		m, err := newMethod(c, md)
		if err != nil {
			return nil, fmt.Errorf("define class %s: method %s: %w", def.Name, md.Name, err)
		}
		table := c.methods
		if md.Static {
			table = c.statics
		}
		key := memberKey(md.Name, md.Sig)
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("define class %s: duplicate method %s%s", def.Name, md.Name, md.Sig)
		}
		m.index = len(vm.methods)
		vm.methods = append(vm.methods, m)
		table[key] = m
	}

	c.index = len(vm.classList)
	vm.classList = append(vm.classList, c)
	vm.classes[def.Name] = c
	return c, nil
}

// Class returns a defined class by name.
func (vm *VM) Class(name string) (*Class, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	c, ok := vm.classes[name]
	return c, ok
}

// Attach creates a new attachment with a fresh identity.
func (vm *VM) Attach() *Env {
	return &Env{
		vm:     vm,
		id:     jbind.AttachmentID(nextAttachment.Add(1)),
		locals: reftable.New[*Obj](reftable.Local),
	}
}

// DeleteGlobalRef implements jbind.VM.
func (vm *VM) DeleteGlobalRef(obj jbind.Object) error {
	raw := uint64(obj)
	if raw&globalBit == 0 {
		return fmt.Errorf("delete global ref: %#x is not a global reference", raw)
	}
	if _, ok := vm.globals.Delete(reftable.Handle(uint32(raw))); !ok {
		vm.log.Warn("delete of stale global reference", zap.Uint64("ref", raw))
		return fmt.Errorf("delete global ref: %#x is stale", raw)
	}
	vm.stats.deleteGlobalRef.Add(1)
	return nil
}

// alloc creates an instance of c with default field values.
func (vm *VM) alloc(c *Class) *Obj {
	o := &Obj{
		class:  c,
		fields: make(map[*Field]fieldValue),
		id:     vm.nextID.Add(1),
	}
	for _, f := range c.allFields() {
		o.fields[f] = fieldValue{prim: zeroValue(f.Kind)}
	}
	return o
}

// mirror returns the java/lang/Class instance representing c.
func (vm *VM) mirror(c *Class) (*Obj, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if c.mirror != nil {
		return c.mirror, nil
	}
	classClass, ok := vm.classes[classClassName]
	if !ok {
		return nil, fmt.Errorf("%s not defined", classClassName)
	}
	m := &Obj{class: classClass, fields: make(map[*Field]fieldValue), id: vm.nextID.Add(1), Native: c}
	c.mirror = m
	return m, nil
}

func (vm *VM) classAt(index int) (*Class, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if index < 0 || index >= len(vm.classList) {
		return nil, false
	}
	return vm.classList[index], true
}

func (vm *VM) methodAt(index int) (*Method, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if index < 0 || index >= len(vm.methods) {
		return nil, false
	}
	return vm.methods[index], true
}

func (vm *VM) fieldAt(index int) (*Field, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if index < 0 || index >= len(vm.fields) {
		return nil, false
	}
	return vm.fields[index], true
}
