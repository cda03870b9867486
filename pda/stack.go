package pda

import (
	"fmt"
	"iter"
	"strings"
)

// Stack is an immutable stack of symbols. The first element is the top.
// Operations return new values and never modify the receiver, so a Stack
// taken from one configuration stays intact while the simulation moves on.
// The zero value is an empty stack. An empty stack is a legal state, not
// an error; it simply offers no top symbol to match transitions against.
type Stack struct {
	symbols []StackSymbol
}

// NewStack builds a stack from symbols given top first.
func NewStack(symbols ...StackSymbol) Stack {
	s := make([]StackSymbol, len(symbols))
	copy(s, symbols)
	return Stack{symbols: s}
}

// Top returns the top symbol. The second value is false when the stack is
// empty.
func (s Stack) Top() (StackSymbol, bool) {
	if len(s.symbols) == 0 {
		return "", false
	}
	return s.symbols[0], true
}

// Pop returns a stack without the top symbol. Popping an empty stack
// yields an empty stack.
func (s Stack) Pop() Stack {
	if len(s.symbols) == 0 {
		return Stack{}
	}
	rest := make([]StackSymbol, len(s.symbols)-1)
	copy(rest, s.symbols[1:])
	return Stack{symbols: rest}
}

// Push returns a stack with symbols added on top. The symbols go on in
// argument order, so the last one becomes the new top: pushing ("a", "b")
// onto Stack("0") yields Stack("b", "a", "0"). Pushing nothing returns an
// equal stack.
func (s Stack) Push(symbols ...StackSymbol) Stack {
	pushed := make([]StackSymbol, 0, len(symbols)+len(s.symbols))
	for i := len(symbols) - 1; i >= 0; i-- {
		pushed = append(pushed, symbols[i])
	}
	pushed = append(pushed, s.symbols...)
	return Stack{symbols: pushed}
}

func (s Stack) Len() int {
	return len(s.symbols)
}

func (s Stack) Copy() Stack {
	return NewStack(s.symbols...)
}

// Symbols iterates over the symbols from the top down. The sequence can be
// ranged over any number of times.
func (s Stack) Symbols() iter.Seq[StackSymbol] {
	return func(yield func(StackSymbol) bool) {
		for _, sym := range s.symbols {
			if !yield(sym) {
				return
			}
		}
	}
}

// Equal reports whether two stacks hold the same symbols in the same
// order.
func (s Stack) Equal(o Stack) bool {
	if len(s.symbols) != len(o.symbols) {
		return false
	}
	for i, sym := range s.symbols {
		if o.symbols[i] != sym {
			return false
		}
	}
	return true
}

// String renders the stack top first, like Stack("1", "0").
func (s Stack) String() string {
	var b strings.Builder
	b.WriteString("Stack(")
	for i, sym := range s.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", string(sym))
	}
	b.WriteString(")")
	return b.String()
}
