package ref

import (
	"github.com/wippyai/jbind"
	"github.com/wippyai/jbind/errors"
)

type localState uint8

const (
	localLive localState = iota
	localPromoted
	localDeleted
)

// Scope owns the local references created through it. A Scope belongs to one
// attachment and must not be shared between goroutines. Only live locals are
// tracked; released and promoted ones leave the scope immediately.
type Scope struct {
	env    jbind.Env
	locals []*Local
	closed bool
}

// NewScope opens a scope on env.
func NewScope(env jbind.Env) *Scope {
	return &Scope{env: env}
}

// Env returns the attachment the scope belongs to.
func (s *Scope) Env() jbind.Env {
	return s.env
}

// Local adopts a local reference produced under the scope's attachment.
func (s *Scope) Local(obj jbind.Object) *Local {
	l := &Local{scope: s, obj: obj}
	if s.closed {
		l.state = localDeleted
		return l
	}
	l.idx = len(s.locals)
	s.locals = append(s.locals, l)
	return l
}

// Len returns the number of live locals in the scope.
func (s *Scope) Len() int {
	return len(s.locals)
}

// drop removes l from the live set in constant time.
func (s *Scope) drop(l *Local) {
	last := len(s.locals) - 1
	if l.idx < 0 || l.idx > last || s.locals[l.idx] != l {
		return
	}
	moved := s.locals[last]
	s.locals[l.idx] = moved
	moved.idx = l.idx
	s.locals[last] = nil
	s.locals = s.locals[:last]
	l.idx = -1
}

// Close deletes every local that was neither promoted nor released.
// Closing twice is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, l := range s.locals {
		if l.obj != jbind.Null {
			s.env.DeleteLocalRef(l.obj)
		}
		l.state = localDeleted
		l.idx = -1
	}
	s.locals = nil
}

// Local is a reference valid only while its Scope is open.
type Local struct {
	scope *Scope
	obj   jbind.Object
	state localState
	idx   int
}

// Object returns the raw reference, or jbind.Null if the local is no longer live.
func (l *Local) Object() jbind.Object {
	if l == nil || l.Err() != nil {
		return jbind.Null
	}
	return l.obj
}

// Err reports why the local can no longer be used.
func (l *Local) Err() error {
	if l == nil {
		return errors.StaleReference("nil local reference")
	}
	switch {
	case l.scope.closed && l.state != localPromoted:
		return errors.StaleReference("local reference used after its scope closed")
	case l.state == localPromoted:
		return errors.Released("local reference was promoted to a global reference")
	case l.state == localDeleted:
		return errors.Released("local reference was deleted")
	}
	return nil
}

// Anchored is always false for locals.
func (l *Local) Anchored() bool {
	return false
}

// Release deletes the local before its scope closes.
func (l *Local) Release() {
	if l == nil || l.state != localLive || l.scope.closed {
		return
	}
	l.state = localDeleted
	l.scope.drop(l)
	if l.obj != jbind.Null {
		l.scope.env.DeleteLocalRef(l.obj)
	}
}

// Promote anchors the referenced object and consumes the local.
func (l *Local) Promote() (*Global, error) {
	if err := l.Err(); err != nil {
		return nil, err
	}
	g, err := Promote(l.scope.env, l.obj)
	if err != nil {
		return nil, err
	}
	l.state = localPromoted
	l.scope.drop(l)
	return g, nil
}
