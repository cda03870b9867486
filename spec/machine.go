package spec

import (
	"fmt"
	"io"

	verr "github.com/ricelink/automata/error"
	"github.com/ricelink/automata/pda"
	"github.com/ricelink/automata/spec/parser"
)

// MachineSpec is the canonical, JSON-serializable form of a machine
// definition. It is what the compile command writes and every other
// command reads back. The slices keep declaration order so that compiled
// output and descriptions stay stable across runs.
type MachineSpec struct {
	Name               string      `json:"name,omitempty"`
	States             []string    `json:"states"`
	InputSymbols       []string    `json:"input_symbols"`
	StackSymbols       []string    `json:"stack_symbols"`
	Transitions        []*RuleSpec `json:"transitions"`
	InitialState       string      `json:"initial_state"`
	InitialStackSymbol string      `json:"initial_stack_symbol"`
	FinalStates        []string    `json:"final_states"`
}

// RuleSpec is one transition in a MachineSpec. An empty Input marks a
// lambda move. Push lists the replacement symbols; the last one becomes
// the new stack top, and an empty list pops the matched top without
// replacement.
type RuleSpec struct {
	State string   `json:"state"`
	Input string   `json:"input,omitempty"`
	Top   string   `json:"top"`
	Next  string   `json:"next"`
	Push  []string `json:"push,omitempty"`
}

// Build assembles the runnable machine. Fields left absent fail
// construction with pda.ErrMissingField; beyond that Build does not check
// the machine (use pda's Validate). Rules sharing a key keep the last
// move, the same way direct table edits behave.
func (m *MachineSpec) Build() (*pda.DPDA, error) {
	var states []pda.State
	if m.States != nil {
		states = make([]pda.State, len(m.States))
		for i, s := range m.States {
			states[i] = pda.State(s)
		}
	}
	var inputSyms []pda.InputSymbol
	if m.InputSymbols != nil {
		inputSyms = make([]pda.InputSymbol, len(m.InputSymbols))
		for i, s := range m.InputSymbols {
			inputSyms[i] = pda.InputSymbol(s)
		}
	}
	var stackSyms []pda.StackSymbol
	if m.StackSymbols != nil {
		stackSyms = make([]pda.StackSymbol, len(m.StackSymbols))
		for i, s := range m.StackSymbols {
			stackSyms[i] = pda.StackSymbol(s)
		}
	}
	var trans pda.TransitionTable
	if m.Transitions != nil {
		trans = make(pda.TransitionTable, len(m.Transitions))
		for _, r := range m.Transitions {
			push := make([]pda.StackSymbol, len(r.Push))
			for i, s := range r.Push {
				push[i] = pda.StackSymbol(s)
			}
			trans.Add(pda.State(r.State), pda.InputSymbol(r.Input), pda.StackSymbol(r.Top), pda.State(r.Next), push...)
		}
	}
	var finals []pda.State
	if m.FinalStates != nil {
		finals = make([]pda.State, len(m.FinalStates))
		for i, s := range m.FinalStates {
			finals[i] = pda.State(s)
		}
	}

	return pda.New(states, inputSyms, stackSyms, trans, pda.State(m.InitialState), pda.StackSymbol(m.InitialStackSymbol), finals)
}

// Parse reads a machine definition in the .pda language and resolves it
// into a MachineSpec. Problems in the definition come back as
// verr.SpecErrors; resolution reports as many as it can in one pass.
func Parse(src io.Reader) (*MachineSpec, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	b := &specBuilder{
		root: root,
	}
	return b.build()
}

type specBuilder struct {
	root *parser.RootNode

	errs verr.SpecErrors
}

func (b *specBuilder) build() (*MachineSpec, error) {
	m := &MachineSpec{}
	seen := map[string]*parser.DirectiveNode{}
	for _, dir := range b.root.Directives {
		if prev, ok := seen[dir.Name]; ok {
			b.addError(semErrDuplicateDir, fmt.Sprintf("%%%v appeared first at %v:%v", dir.Name, prev.Pos.Row, prev.Pos.Col), dir.Pos)
			continue
		}
		seen[dir.Name] = dir

		switch dir.Name {
		case "name":
			if len(dir.Parameters) != 1 {
				b.addError(semErrDirInvalidParam, "'name' takes just one name", dir.Pos)
				continue
			}
			m.Name = dir.Parameters[0]
		case "states":
			if len(dir.Parameters) == 0 {
				b.addError(semErrDirInvalidParam, "'states' needs at least one state", dir.Pos)
				continue
			}
			m.States = dir.Parameters
		case "input":
			if len(dir.Parameters) == 0 {
				b.addError(semErrDirInvalidParam, "'input' needs at least one symbol", dir.Pos)
				continue
			}
			m.InputSymbols = dir.Parameters
		case "stack":
			if len(dir.Parameters) == 0 {
				b.addError(semErrDirInvalidParam, "'stack' needs at least one symbol", dir.Pos)
				continue
			}
			m.StackSymbols = dir.Parameters
		case "initial":
			if len(dir.Parameters) != 1 {
				b.addError(semErrDirInvalidParam, "'initial' takes just one state", dir.Pos)
				continue
			}
			m.InitialState = dir.Parameters[0]
		case "bottom":
			if len(dir.Parameters) != 1 {
				b.addError(semErrDirInvalidParam, "'bottom' takes just one stack symbol", dir.Pos)
				continue
			}
			m.InitialStackSymbol = dir.Parameters[0]
		case "final":
			// Zero parameters is legal: the machine then accepts only by
			// emptying its stack.
			m.FinalStates = dir.Parameters
			if m.FinalStates == nil {
				m.FinalStates = []string{}
			}
		default:
			b.addError(semErrDirInvalidName, fmt.Sprintf("'%v'", dir.Name), dir.Pos)
		}
	}

	for _, name := range []string{"states", "input", "stack", "initial", "bottom"} {
		if _, ok := seen[name]; !ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrMissingDir,
				Detail: "%" + name,
			})
		}
	}
	// An omitted %final is the same as an empty one.
	if _, ok := seen["final"]; !ok {
		m.FinalStates = []string{}
	}

	type ruleKey struct {
		state string
		input string
		top   string
	}
	seenRules := map[ruleKey]*parser.RuleNode{}
	for _, rule := range b.root.Rules {
		k := ruleKey{state: rule.State, input: rule.Input, top: rule.Top}
		if prev, ok := seenRules[k]; ok {
			b.addError(semErrDuplicateRule, fmt.Sprintf("%v appeared first at %v:%v", ruleKeyText(rule.State, rule.Input, rule.Top), prev.Pos.Row, prev.Pos.Col), rule.Pos)
			continue
		}
		seenRules[k] = rule
		m.Transitions = append(m.Transitions, &RuleSpec{
			State: rule.State,
			Input: rule.Input,
			Top:   rule.Top,
			Next:  rule.Next,
			Push:  rule.Push,
		})
	}
	if m.Transitions == nil {
		m.Transitions = []*RuleSpec{}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return m, nil
}

func (b *specBuilder) addError(cause *SemanticError, detail string, pos parser.Position) {
	b.errs = append(b.errs, &verr.SpecError{
		Cause:  cause,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

func ruleKeyText(state, input, top string) string {
	if input == "" {
		input = "_"
	}
	return fmt.Sprintf("%v %v %v", state, input, top)
}
