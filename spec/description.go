package spec

import "sort"

// Description arranges a machine for display. The show command renders
// it; nothing reads it back.
type Description struct {
	Name               string
	InputSymbols       []string
	StackSymbols       []string
	InitialStackSymbol string
	States             []*StateDesc
}

// StateDesc is one state and the moves leaving it. Moves lists lambda
// moves first, mirroring the precedence the machine gives them.
type StateDesc struct {
	Name    string
	Initial bool
	Final   bool
	Moves   []*MoveDesc
}

// MoveDesc is one transition out of a state. An empty Input marks a
// lambda move.
type MoveDesc struct {
	Input string
	Top   string
	Next  string
	Push  []string
}

// Describe summarizes m: states in declaration order, each with its
// outgoing moves ordered lambda first, then by input symbol and stack
// top.
func Describe(m *MachineSpec) *Description {
	moves := map[string][]*MoveDesc{}
	for _, r := range m.Transitions {
		moves[r.State] = append(moves[r.State], &MoveDesc{
			Input: r.Input,
			Top:   r.Top,
			Next:  r.Next,
			Push:  r.Push,
		})
	}
	for _, ms := range moves {
		sort.SliceStable(ms, func(i, j int) bool {
			if ms[i].Input != ms[j].Input {
				return ms[i].Input < ms[j].Input
			}
			return ms[i].Top < ms[j].Top
		})
	}

	finals := map[string]struct{}{}
	for _, s := range m.FinalStates {
		finals[s] = struct{}{}
	}

	d := &Description{
		Name:               m.Name,
		InputSymbols:       m.InputSymbols,
		StackSymbols:       m.StackSymbols,
		InitialStackSymbol: m.InitialStackSymbol,
	}
	for _, s := range m.States {
		_, final := finals[s]
		d.States = append(d.States, &StateDesc{
			Name:    s,
			Initial: s == m.InitialState,
			Final:   final,
			Moves:   moves[s],
		})
	}
	return d
}
