package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jbind/bind"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type painter func(lipgloss.Style, string) string

func paint(styled bool) painter {
	if !styled {
		return func(_ lipgloss.Style, s string) string { return s }
	}
	return func(st lipgloss.Style, s string) string { return st.Render(s) }
}

// printClasses writes every class with its edges and member signatures.
func printClasses(w io.Writer, classes []*bind.Class, styled bool) {
	p := paint(styled)
	for i, c := range classes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		kind := "class"
		if c.Interface() {
			kind = "interface"
		}
		fmt.Fprintf(w, "%s %s %s\n", kind, p(funcStyle, c.Name()), p(typeStyle, c.Signature()))

		for _, e := range c.Edges() {
			fmt.Fprintf(w, "  %s %s\n", e.Kind, e.To)
		}
		if ctor := c.Constructor(); ctor != nil {
			fmt.Fprintf(w, "  new%s\n", p(typeStyle, ctor.Signature()))
		}
		for _, f := range c.Fields() {
			fmt.Fprintf(w, "  field %s %s\n", f.Name(), p(typeStyle, f.Signature()))
		}
		for _, m := range c.Statics() {
			fmt.Fprintf(w, "  static %s%s%s\n", p(funcStyle, m.Name()), p(typeStyle, m.Signature()), docSuffix(m.Spec()))
		}
		for _, m := range c.Methods() {
			fmt.Fprintf(w, "  %s%s%s\n", p(funcStyle, m.Name()), p(typeStyle, m.Signature()), docSuffix(m.Spec()))
		}
	}
}

func docSuffix(m bind.MethodSpec) string {
	if m.Doc == "" {
		return ""
	}
	return "  // " + strings.TrimSpace(m.Doc)
}
