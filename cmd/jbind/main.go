package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/jbind/bind"
	"github.com/wippyai/jbind/decl"
	"github.com/wippyai/jbind/gen"
	"github.com/wippyai/jbind/ref"
)

func main() {
	var (
		declFile    = flag.String("decl", "", "Path to a declaration file (.yaml)")
		list        = flag.Bool("list", false, "List declared classes and members and exit")
		genOut      = flag.String("gen", "", "Write generated Go bindings to this file (- for stdout)")
		call        = flag.String("call", "", "Static method to call, as Class.method or Class.method(descriptor)")
		args        = flag.String("arg", "", "Arguments for -call (comma-separated)")
		props       = flag.String("prop", "", "Runtime properties (KEY=VAL,KEY2=VAL2)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Development logging")
	)
	flag.Parse()

	if *declFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: jbind -decl <file.yaml> -list")
		fmt.Fprintln(os.Stderr, "       jbind -decl <file.yaml> -gen <out.go>")
		fmt.Fprintln(os.Stderr, "       jbind -decl <file.yaml> -call Class.method [-arg a,b] [-prop K=V,...]")
		fmt.Fprintln(os.Stderr, "       jbind -decl <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
		bind.SetLogger(log.Named("bind"))
		ref.SetLogger(log.Named("ref"))
	}
	defer func() { _ = log.Sync() }()

	if err := run(*declFile, *list, *genOut, *call, *args, *props, *interactive, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(declFile string, listOnly bool, genOut, call, argStr, propStr string, interactive bool, log *zap.Logger) error {
	file, err := decl.Load(declFile)
	if err != nil {
		return err
	}

	if genOut != "" {
		src, err := gen.Generate(file)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if genOut == "-" {
			_, err = os.Stdout.Write(src)
			return err
		}
		return os.WriteFile(genOut, src, 0o644)
	}

	s, err := newSession(file, parseProps(propStr), log)
	if err != nil {
		return err
	}
	defer s.Close()

	if interactive {
		return runInteractive(s)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if listOnly || call == "" {
		printClasses(os.Stdout, s.classes, styled)
		if listOnly {
			return nil
		}
		fmt.Println()
		fmt.Println("Use -call Class.method to call a static method.")
		return nil
	}

	var callArgs []string
	if argStr != "" {
		callArgs = strings.Split(argStr, ",")
	}
	fmt.Printf("Calling %s(%s)...\n", call, strings.Join(callArgs, ", "))
	result, err := s.CallTarget(call, callArgs)
	if err != nil {
		return fmt.Errorf("call %s: %w", call, err)
	}
	fmt.Printf("Result: %s\n", result)
	return nil
}

func parseProps(s string) map[string]string {
	props := make(map[string]string)
	if s == "" {
		return props
	}
	for _, kv := range strings.Split(s, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			props[parts[0]] = parts[1]
		}
	}
	return props
}
