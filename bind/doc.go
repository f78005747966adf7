// Package bind builds type-checked proxies for foreign classes.
//
// A Decl names a foreign class, its direct supertypes and its members.
// Declaring it in a Registry yields a Class holding one accessor per member.
// Every accessor owns a resolution slot: the first call under an attachment
// looks the identifier up, later calls under the same attachment reuse it,
// and a call under a different attachment resolves again. Failed lookups are
// returned and never cached.
//
//	booleanClass := bind.MustDeclare(bind.Decl{
//	    Name: "java/lang/Boolean",
//	    Static: []bind.MethodSpec{{
//	        Name:   "parseBoolean",
//	        Params: []bind.Param{{Name: "s", Type: sig.Object("java/lang/String")}},
//	        Return: sig.Boolean,
//	    }},
//	})
//
//	parse := booleanClass.MustStatic("parseBoolean", "")
//	v, err := parse.Call(env, bind.Obj(str))
//	ok := bind.Unwrap[bool](v)
//
// # Proxies
//
// Generated proxies are single-field structs:
//
//	type String struct{ bind.Handle }
//
// All proxies share that layout, so an upcast is a plain conversion between
// them, and the Proxy constraint lets generic code build and unwrap any of
// them with Wrap and HandleOf.
//
// # Ownership
//
// Objects returned by constructors, methods and fields are always anchored:
// the local reference is promoted and deleted before the accessor returns.
// The caller owns the returned Handle and must Release it.
package bind
