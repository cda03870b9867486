package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/ricelink/automata/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <machine definition file path>",
		Short:   "Print a machine description in a readable format",
		Example: `  automata show anbn.pda`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := readMachineSpec(args[0])
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, spec.Describe(m))
}

const descTemplate = `# {{ if .Name }}{{ .Name }}{{ else }}(unnamed machine){{ end }}

## Alphabets

input: {{ join .InputSymbols }}
stack: {{ join .StackSymbols }} (bottom {{ .InitialStackSymbol }})

## States
{{ range .States }}
### {{ printState . }}
{{ range .Moves }}
{{- printMove . }}
{{ end -}}
{{ end }}`

func writeDescription(w io.Writer, desc *spec.Description) error {
	fns := template.FuncMap{
		"join": func(syms []string) string {
			return strings.Join(syms, " ")
		},
		"printState": func(s *spec.StateDesc) string {
			var b strings.Builder
			b.WriteString(s.Name)
			if s.Initial {
				b.WriteString(" (initial)")
			}
			if s.Final {
				b.WriteString(" (final)")
			}
			return b.String()
		},
		"printMove": func(m *spec.MoveDesc) string {
			input := m.Input
			if input == "" {
				input = "_"
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%v %v -> %v", input, m.Top, m.Next)
			if len(m.Push) > 0 {
				fmt.Fprintf(&b, " %v", strings.Join(m.Push, " "))
			} else {
				b.WriteString(" (pop)")
			}
			return b.String()
		},
	}

	tmpl, err := template.New("description").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, desc)
}
