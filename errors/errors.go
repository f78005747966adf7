package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDeclare  Phase = "declare"  // binding declaration
	PhaseResolve  Phase = "resolve"  // class/member lookup
	PhaseMarshal  Phase = "marshal"  // Go to foreign value conversion
	PhaseCall     Phase = "call"     // foreign invocation
	PhaseRelease  Phase = "release"  // reference release
	PhaseParse    Phase = "parse"    // descriptor and declaration file parsing
	PhaseGenerate Phase = "generate" // Go source generation
)

// Kind categorizes the error
type Kind string

const (
	KindClassNotFound      Kind = "class_not_found"
	KindMemberNotFound     Kind = "member_not_found"
	KindForeignException   Kind = "foreign_exception"
	KindTypeMismatch       Kind = "type_mismatch"
	KindInvalidSignature   Kind = "invalid_signature"
	KindInvalidDeclaration Kind = "invalid_declaration"
	KindDuplicate          Kind = "duplicate"
	KindNilReference       Kind = "nil_reference"
	KindStaleReference     Kind = "stale_reference"
	KindReleased           Kind = "released"
	KindNotFound           Kind = "not_found"
	KindInvalidInput       Kind = "invalid_input"
	KindUnsupported        Kind = "unsupported"
)

// Error is the structured error type used throughout jbind
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Class     string
	Member    string
	Signature string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" {
		b.WriteString(" at ")
		b.WriteString(e.Class)
		if e.Member != "" {
			b.WriteByte('.')
			b.WriteString(e.Member)
		}
	} else if e.Member != "" {
		b.WriteString(" at ")
		b.WriteString(e.Member)
	}

	if e.Signature != "" {
		b.WriteByte(' ')
		b.WriteString(e.Signature)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the foreign class name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Member sets the member name
func (b *Builder) Member(name string) *Builder {
	b.err.Member = name
	return b
}

// Signature sets the type signature
func (b *Builder) Signature(sig string) *Builder {
	b.err.Signature = sig
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ClassNotFound creates a class resolution error
func ClassNotFound(class string, cause error) *Error {
	return &Error{
		Phase: PhaseResolve,
		Kind:  KindClassNotFound,
		Class: class,
		Cause: cause,
	}
}

// MemberNotFound creates a member resolution error
func MemberNotFound(class, member, signature string, cause error) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindMemberNotFound,
		Class:     class,
		Member:    member,
		Signature: signature,
		Cause:     cause,
	}
}

// ForeignException wraps an exception raised by the foreign runtime
func ForeignException(class, member string, cause error) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindForeignException,
		Class:  class,
		Member: member,
		Cause:  cause,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, member, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Member: member,
		Detail: fmt.Sprintf("expected %s, got %s", want, got),
	}
}

// InvalidSignature creates a malformed descriptor error
func InvalidSignature(sig string, detail string) *Error {
	return &Error{
		Phase:     PhaseParse,
		Kind:      KindInvalidSignature,
		Signature: sig,
		Detail:    detail,
	}
}

// InvalidDeclaration creates a declaration error
func InvalidDeclaration(class, detail string) *Error {
	return &Error{
		Phase:  PhaseDeclare,
		Kind:   KindInvalidDeclaration,
		Class:  class,
		Detail: detail,
	}
}

// Duplicate creates a duplicate declaration error
func Duplicate(phase Phase, class, member string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Class:  class,
		Member: member,
		Detail: "already declared",
	}
}

// NilReference creates a null receiver error
func NilReference(class, member string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNilReference,
		Class:  class,
		Member: member,
		Detail: "null receiver",
	}
}

// StaleReference reports use of a local reference outside its scope
func StaleReference(detail string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindStaleReference,
		Detail: detail,
	}
}

// Released reports use of a reference after it was released
func Released(detail string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindReleased,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// IsResolution reports whether err, or any error it wraps, is a class or
// member resolution failure.
func IsResolution(err error) bool {
	return anyError(err, func(e *Error) bool {
		return e.Phase == PhaseResolve && (e.Kind == KindClassNotFound || e.Kind == KindMemberNotFound)
	})
}

// IsForeignException reports whether err carries an exception raised by the foreign runtime.
func IsForeignException(err error) bool {
	return anyError(err, func(e *Error) bool {
		return e.Kind == KindForeignException
	})
}

// anyError walks the wrap chain of err and reports whether any *Error matches.
func anyError(err error, match func(*Error) bool) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if match(e) {
			return true
		}
		err = e.Cause
	}
	return false
}

// UnresolvedMember represents a single declared member the runtime could not resolve
type UnresolvedMember struct {
	Class     string // e.g., "java/lang/Boolean"
	Member    string // e.g., "parseBoolean"
	Signature string // e.g., "(Ljava/lang/String;)Z"
}

// UnresolvedError is returned when verifying a declaration finds members
// the runtime does not know
type UnresolvedError struct {
	Members []UnresolvedMember
}

// NewUnresolvedError creates an error from a list of "class#member#signature" strings
func NewUnresolvedError(keys []string) *UnresolvedError {
	result := &UnresolvedError{
		Members: make([]UnresolvedMember, 0, len(keys)),
	}
	for _, key := range keys {
		result.Members = append(result.Members, parseMemberKey(key))
	}
	return result
}

func parseMemberKey(key string) UnresolvedMember {
	class, rest, found := strings.Cut(key, "#")
	if !found {
		return UnresolvedMember{Class: key}
	}
	member, sig, _ := strings.Cut(rest, "#")
	return UnresolvedMember{Class: class, Member: member, Signature: sig}
}

func (e *UnresolvedError) Error() string {
	if len(e.Members) == 0 {
		return "[resolve] unresolved: no members specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "unresolved %d member(s):\n", len(e.Members))

	// Group by class for cleaner output
	byClass := make(map[string][]string)
	var order []string
	for _, m := range e.Members {
		if _, exists := byClass[m.Class]; !exists {
			order = append(order, m.Class)
		}
		if m.Member == "" {
			continue
		}
		byClass[m.Class] = append(byClass[m.Class], m.Member+" "+m.Signature)
	}

	for _, class := range order {
		b.WriteString("\n  ")
		b.WriteString(class)
		b.WriteString(":\n")
		if len(byClass[class]) == 0 {
			b.WriteString("    (class)\n")
		}
		for _, m := range byClass[class] {
			b.WriteString("    - ")
			b.WriteString(m)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *UnresolvedError) Is(target error) bool {
	_, ok := target.(*UnresolvedError)
	return ok
}
