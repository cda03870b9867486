package pda

import (
	"fmt"
	"sort"
	"strings"
)

// TransitionKey identifies the situation a transition fires in: the
// machine is in State, the next input symbol is Input (Lambda for a move
// that consumes no input), and the topmost stack symbol is Top. A key
// absent from the table means the machine has no move there.
type TransitionKey struct {
	State State
	Input InputSymbol
	Top   StackSymbol
}

// String renders the key the way a definition rule spells it, with _
// standing for lambda: q0 a 0.
func (k TransitionKey) String() string {
	input := string(k.Input)
	if k.Input == Lambda {
		input = "_"
	}
	return fmt.Sprintf("%v %v %v", string(k.State), input, string(k.Top))
}

// Move is the effect of a transition: enter Next, pop the matched top
// symbol, and push Push so that its last element becomes the new top. An
// empty Push pops without replacement.
type Move struct {
	Next State
	Push []StackSymbol
}

func (m Move) String() string {
	var b strings.Builder
	b.WriteString(string(m.Next))
	for _, sym := range m.Push {
		fmt.Fprintf(&b, " %v", string(sym))
	}
	return b.String()
}

// TransitionTable is a machine's move function. It is a plain map so that
// callers can add, replace, and delete entries directly; the machine
// reads whatever the table holds at the moment of each lookup.
type TransitionTable map[TransitionKey]Move

// Add registers a transition, replacing any move already keyed by (from,
// input, top). The push symbols are copied; the last one becomes the new
// stack top.
func (t TransitionTable) Add(from State, input InputSymbol, top StackSymbol, next State, push ...StackSymbol) {
	p := make([]StackSymbol, len(push))
	copy(p, push)
	t[TransitionKey{State: from, Input: input, Top: top}] = Move{Next: next, Push: p}
}

// Copy returns a table sharing no structure with the original.
func (t TransitionTable) Copy() TransitionTable {
	c := make(TransitionTable, len(t))
	for k, m := range t {
		push := make([]StackSymbol, len(m.Push))
		copy(push, m.Push)
		c[k] = Move{Next: m.Next, Push: push}
	}
	return c
}

// Equal reports whether two tables define the same moves.
func (t TransitionTable) Equal(o TransitionTable) bool {
	if len(t) != len(o) {
		return false
	}
	for k, m := range t {
		om, ok := o[k]
		if !ok || om.Next != m.Next || len(om.Push) != len(m.Push) {
			return false
		}
		for i, sym := range m.Push {
			if om.Push[i] != sym {
				return false
			}
		}
	}
	return true
}

// sortedKeys returns the keys ordered by state, then input (lambda before
// any symbol), then stack top. Validation scans keys in this order so
// that repeated runs report the same violation first.
func (t TransitionTable) sortedKeys() []TransitionKey {
	keys := make([]TransitionKey, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		if keys[i].Input != keys[j].Input {
			return keys[i].Input < keys[j].Input
		}
		return keys[i].Top < keys[j].Top
	})
	return keys
}
