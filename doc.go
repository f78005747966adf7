// Package jbind provides type-checked Go proxies for classes living in a JVM.
//
// A proxy is generated from a declaration (class name, parents, constructor,
// fields, methods) and calls into the foreign runtime through the narrow call
// surface defined in this package. Member identifiers are resolved lazily and
// cached per attachment, object results are always anchored, and upcasts follow
// only the declared hierarchy.
//
// # Architecture Overview
//
//	jbind/              Foreign call surface: Env, VM, Value, Object, IDs
//	├── sig/            Type signatures and descriptor parsing
//	├── cache/          Per-member resolution cache slots
//	├── ref/            Local and anchored (global) references
//	├── bind/           Declarations, proxies, accessors, hierarchy
//	├── decl/           YAML declaration files
//	├── gen/            Go source generator for declarations
//	├── java/lang/      Generated bindings for core java.lang types
//	├── jvmsim/         In-memory runtime implementing the call surface
//	├── reftable/       Handle table backing jvmsim references
//	└── errors/         Structured error types
//
// # Quick Start
//
//	env := vm.Attach() // any jbind.Env
//	defer env.Detach()
//
//	s, err := lang.NewString(env, "true")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Release()
//
//	ok, err := lang.BooleanParseBoolean(env, s)
//	fmt.Println(ok) // true
//
// # Declaring Bindings
//
// Declarations are written in YAML and compiled with cmd/jbind:
//
//	package: lang
//	classes:
//	  - name: java/lang/Boolean
//	    extends: [java/lang/Object]
//	    constructor:
//	      params: [{name: value, type: boolean}]
//	    static:
//	      - {name: parseBoolean, params: [{name: s, type: String}], returns: boolean}
//
// The same declaration can be registered at runtime with bind.Declare.
//
// # Thread Safety
//
// Env is bound to one attachment and must not be shared between goroutines.
// Resolution caches and anchored references are safe for concurrent use.
package jbind
