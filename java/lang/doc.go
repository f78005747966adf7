// Package lang binds the core classes of java.lang.
//
// The proxies are generated from lang.yaml. Other declaration files can
// import them:
//
//	imports:
//	  - {name: java/lang/Object, pkg: github.com/wippyai/jbind/java/lang}
package lang

//go:generate go run github.com/wippyai/jbind/cmd/jbind -decl lang.yaml -gen lang_gen.go
