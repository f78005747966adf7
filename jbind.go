package jbind

import (
	"errors"
	"fmt"
)

// Object is an opaque reference to a foreign object. The zero value is null.
type Object uintptr

// Class is an opaque reference to a foreign class.
type Class uintptr

// MethodID identifies a resolved method or constructor.
type MethodID uintptr

// FieldID identifies a resolved field.
type FieldID uintptr

// AttachmentID identifies one attachment of a thread to the runtime.
// It is stable while the attachment lives and distinct between attachments.
// Zero is never a valid identity.
type AttachmentID uint64

// Null is the null object reference.
const Null Object = 0

// ErrNotFound is reported by the call surface when a class or member lookup fails.
var ErrNotFound = errors.New("not found")

// Exception is a throwable raised by the foreign runtime during a call.
type Exception struct {
	Class   string
	Message string
	Object  Object
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Class
	}
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

// Env is the call surface of one attachment.
// References returned by Env are local to the attachment unless noted.
type Env interface {
	// AttachmentID returns the identity of this attachment.
	AttachmentID() AttachmentID

	// VM returns the runtime this attachment belongs to.
	VM() VM

	FindClass(name string) (Class, error)
	GetMethodID(class Class, name, signature string) (MethodID, error)
	GetStaticMethodID(class Class, name, signature string) (MethodID, error)
	GetFieldID(class Class, name, signature string) (FieldID, error)

	CallMethod(obj Object, method MethodID, ret Kind, args []Value) (Value, error)
	CallStaticMethod(class Class, method MethodID, ret Kind, args []Value) (Value, error)
	NewObject(class Class, ctor MethodID, args []Value) (Object, error)

	GetField(obj Object, field FieldID, kind Kind) (Value, error)
	SetField(obj Object, field FieldID, kind Kind, value Value) error

	// NewGlobalRef anchors obj so it stays valid across attachments.
	NewGlobalRef(obj Object) (Object, error)
	DeleteLocalRef(obj Object)

	// GetObjectClass returns a local reference to the runtime class of obj.
	GetObjectClass(obj Object) (Object, error)
	IsSameObject(a, b Object) bool

	NewStringUTF(s string) (Object, error)
	GetStringUTF(obj Object) (string, error)
}

// VM is the attachment-independent part of the runtime.
type VM interface {
	// DeleteGlobalRef releases an anchor. Safe to call from any goroutine.
	DeleteGlobalRef(obj Object) error
}
