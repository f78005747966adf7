// Package errors provides structured error types for jbind.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the foreign class, member and signature involved, plus a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindMemberNotFound).
//		Class("java/lang/Boolean").
//		Member("parseBoolean").
//		Signature("(Ljava/lang/String;)Z").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MemberNotFound("java/lang/Boolean", "parseBoolean", "(Ljava/lang/String;)Z", cause)
//	err := errors.ForeignException("java/lang/Integer", "parseInt", exc)
//
// Resolution failures and foreign exceptions are distinguishable with
// IsResolution and IsForeignException. All errors implement the standard error
// interface and support errors.Is/As.
package errors
