package pda

import (
	"fmt"
	"strings"
)

// Configuration is a snapshot of a run: the current state, the input not
// yet consumed, and the stack contents. Configurations are immutable;
// every simulation step produces a fresh one.
type Configuration struct {
	state     State
	remaining []InputSymbol
	stack     Stack
}

// NewConfiguration builds a configuration. The remaining input is given
// leftmost symbol first and is copied, so the caller's slice stays
// independent.
func NewConfiguration(state State, remaining []InputSymbol, stack Stack) Configuration {
	r := make([]InputSymbol, len(remaining))
	copy(r, remaining)
	return Configuration{
		state:     state,
		remaining: r,
		stack:     stack,
	}
}

func (c Configuration) State() State {
	return c.state
}

// Remaining returns a copy of the unconsumed input, leftmost symbol first.
func (c Configuration) Remaining() []InputSymbol {
	r := make([]InputSymbol, len(c.remaining))
	copy(r, c.remaining)
	return r
}

func (c Configuration) Stack() Stack {
	return c.stack
}

// Equal reports whether two configurations agree on state, remaining
// input, and stack.
func (c Configuration) Equal(o Configuration) bool {
	if c.state != o.state {
		return false
	}
	if len(c.remaining) != len(o.remaining) {
		return false
	}
	for i, sym := range c.remaining {
		if o.remaining[i] != sym {
			return false
		}
	}
	return c.stack.Equal(o.stack)
}

// String renders the configuration like (q1, "abb", Stack("1", "0")).
func (c Configuration) String() string {
	var b strings.Builder
	for _, sym := range c.remaining {
		b.WriteString(string(sym))
	}
	return fmt.Sprintf("(%v, %q, %v)", string(c.state), b.String(), c.stack)
}
