// Package ref implements the reference ownership model for foreign objects.
//
// Two flavors of reference exist:
//
//	Local   - valid only inside the Scope (attachment and call) that produced it
//	Global  - an anchor valid across attachments until its last holder releases it
//
// Locals are owned by a Scope and deleted when the scope closes:
//
//	scope := ref.NewScope(env)
//	defer scope.Close()
//
//	l := scope.Local(obj)
//	g, err := l.Promote() // l is consumed, g must be released
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
//
// A Global may have several holders. Clone adds a holder; Release drops one.
// Exactly one foreign release happens, when the last holder releases. Release
// is safe from any goroutine and failures are logged rather than returned,
// since release usually runs while tearing something else down.
package ref
