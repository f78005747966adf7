// Package jvmsim is an in-memory runtime implementing the jbind call surface.
//
// It is not a virtual machine: classes are defined from Go, method bodies are
// Go functions and nothing is ever garbage collected. It exists so bindings can
// be exercised without a JVM, and it is strict where a real runtime would
// crash: identifiers and local references are qualified by the attachment that
// produced them, so using one under another attachment fails with an error.
//
// # Quick Start
//
//	vm := jvmsim.New()
//	if err := jvmsim.LoadLang(vm); err != nil {
//	    log.Fatal(err)
//	}
//
//	env := vm.Attach()
//	defer env.Detach()
//
//	cls, _ := env.FindClass("java/lang/Boolean")
//	mid, _ := env.GetStaticMethodID(cls, "parseBoolean", "(Ljava/lang/String;)Z")
//
// # Defining Classes
//
//	vm.DefineClass(jvmsim.ClassDef{
//	    Name: "com/example/Counter",
//	    Fields: []jvmsim.FieldDef{{Name: "count", Sig: "I"}},
//	    Methods: []jvmsim.MethodDef{
//	        {Name: "<init>", Sig: "()V", Fn: func(env *jvmsim.Env, this *jvmsim.Obj, args []jbind.Value) (jbind.Value, error) {
//	            return jbind.Void, nil
//	        }},
//	    },
//	})
//
// Instance methods dispatch virtually along the superclass chain. A method
// body reports a foreign exception by returning env.Throw(class, message).
//
// # Counters
//
// Stats reports how many lookups, calls and reference operations happened,
// which makes resolution caching and release discipline observable in tests.
//
// # Limits
//
// References pack the attachment identity into the upper half of a uintptr,
// so the simulator requires a 64-bit platform.
package jvmsim
