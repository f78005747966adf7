package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewMethods view = iota
	viewForm
	viewResult
)

// browser lists the declared static methods and calls them with typed input.
type browser struct {
	s       *session
	funcs   []function
	cursor  int
	form    []textinput.Model
	focused int
	view    view
	output  string
	failure error
}

type calledMsg struct {
	output string
	err    error
}

func newBrowser(s *session) *browser {
	return &browser{s: s, funcs: s.functions()}
}

func (b *browser) Init() tea.Cmd { return nil }

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calledMsg:
		b.output, b.failure = msg.output, msg.err
		b.view = viewResult
		return b, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return b, tea.Quit
		}
		switch b.view {
		case viewMethods:
			return b.updateMethods(msg)
		case viewForm:
			return b.updateForm(msg)
		case viewResult:
			return b.updateResult(msg)
		}
	}
	if b.view == viewForm {
		return b, b.forward(msg)
	}
	return b, nil
}

func (b *browser) updateMethods(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.funcs)-1 {
			b.cursor++
		}
	case "enter":
		if len(b.funcs) == 0 {
			return b, nil
		}
		b.openForm()
		if len(b.form) == 0 {
			return b, b.call
		}
		b.view = viewForm
	}
	return b, nil
}

func (b *browser) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.form = nil
		b.view = viewMethods
		return b, nil
	case "enter":
		return b, b.call
	case "tab", "shift+tab":
		if len(b.form) > 1 {
			step := 1
			if msg.String() == "shift+tab" {
				step = len(b.form) - 1
			}
			b.form[b.focused].Blur()
			b.focused = (b.focused + step) % len(b.form)
			b.form[b.focused].Focus()
		}
		return b, nil
	}
	return b, b.forward(msg)
}

func (b *browser) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return b, tea.Quit
	case "enter", "esc":
		b.output, b.failure = "", nil
		b.view = viewMethods
	}
	return b, nil
}

// forward passes msg to every form input; only the focused one reacts to keys.
func (b *browser) forward(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(b.form))
	for i := range b.form {
		b.form[i], cmds[i] = b.form[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (b *browser) openForm() {
	params := b.funcs[b.cursor].method.Spec().Params
	b.form = make([]textinput.Model, 0, len(params))
	for _, p := range params {
		in := textinput.New()
		in.Prompt = p.Name + ": "
		in.Placeholder = p.Type.String()
		in.Width = 40
		b.form = append(b.form, in)
	}
	b.focused = 0
	if len(b.form) > 0 {
		b.form[0].Focus()
	}
}

func (b *browser) call() tea.Msg {
	args := make([]string, len(b.form))
	for i := range b.form {
		args[i] = b.form[i].Value()
	}
	out, err := b.s.Call(b.funcs[b.cursor].method, args)
	return calledMsg{output: out, err: err}
}

func (b *browser) View() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n\n", titleStyle.Render("jbind"), b.s.file.Path())

	if len(b.funcs) == 0 {
		sb.WriteString("No static methods declared.\n\n")
		sb.WriteString(helpStyle.Render("q quit"))
		return sb.String()
	}

	switch b.view {
	case viewMethods:
		b.viewMethods(&sb)
	case viewForm:
		b.viewForm(&sb)
	case viewResult:
		b.viewResult(&sb)
	}
	return sb.String()
}

func (b *browser) viewMethods(sb *strings.Builder) {
	class := ""
	for i, f := range b.funcs {
		if name := f.class.Name(); name != class {
			class = name
			fmt.Fprintf(sb, "%s\n", typeStyle.Render(class))
		}
		if i == b.cursor {
			sb.WriteString(selectedStyle.Render("> " + describeFunc(f, false)))
		} else {
			sb.WriteString("  " + describeFunc(f, true))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n" + helpStyle.Render("↑/↓ move • enter call • q quit"))
}

func (b *browser) viewForm(sb *strings.Builder) {
	f := b.funcs[b.cursor]
	fmt.Fprintf(sb, "%s %s\n\n", funcStyle.Render(f.class.Name()+"."+f.method.Name()), typeStyle.Render(f.method.Signature()))
	for _, in := range b.form {
		sb.WriteString(in.View())
		sb.WriteByte('\n')
	}
	sb.WriteString("\n" + helpStyle.Render("tab/shift+tab field • enter call • esc back"))
}

func (b *browser) viewResult(sb *strings.Builder) {
	fmt.Fprintf(sb, "%s\n\n", funcStyle.Render(b.funcs[b.cursor].String()))
	if b.failure != nil {
		sb.WriteString(errorStyle.Render("Error: " + b.failure.Error()))
	} else {
		sb.WriteString(resultStyle.Render("= " + b.output))
	}
	sb.WriteString("\n\n" + helpStyle.Render("enter back • q quit"))
}

// describeFunc renders a method as name(param type, ...) return.
func describeFunc(f function, styled bool) string {
	p := paint(styled)
	spec := f.method.Spec()
	params := make([]string, len(spec.Params))
	for i, prm := range spec.Params {
		params[i] = prm.Name + " " + p(typeStyle, prm.Type.String())
	}
	return p(funcStyle, f.method.Name()) + "(" + strings.Join(params, ", ") + ") " + p(typeStyle, spec.Return.String())
}

func runInteractive(s *session) error {
	_, err := tea.NewProgram(newBrowser(s), tea.WithAltScreen()).Run()
	return err
}
