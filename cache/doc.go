// Package cache provides the resolution cache slot used by generated bindings.
//
// Resolving a class, method or field identifier is expensive relative to a call,
// so every declared member owns one process-wide Slot. A slot remembers the id
// together with the identity of the attachment that resolved it:
//
//	id, err := slot.Resolve(env.AttachmentID(), func() (jbind.MethodID, error) {
//	    return env.GetMethodID(class, "toString", "()Ljava/lang/String;")
//	})
//
// If the stored identity matches the caller's attachment the id is returned
// without a foreign call. Otherwise the resolver runs under the current
// attachment and the slot is overwritten. Failures are returned and never
// stored, so the next call retries.
//
// # Concurrency
//
// Slots are lock-free. The (attachment, id) pair lives behind a single atomic
// pointer to an immutable entry, so a reader always sees a matching pair and
// an id from one attachment is never reported valid for another. Concurrent
// overwrites from different attachments may cause repeated re-resolution, which
// costs time but never correctness: callers capture the id before using it.
package cache
