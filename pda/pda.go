package pda

import "fmt"

// DPDA is a deterministic pushdown automaton: a finite-state machine
// coupled with a stack, deciding whether input strings belong to a
// language.
//
// All fields are exported and caller-owned. Tests and tools may edit
// Transitions, or any other field, in place and call Validate or
// ReadInput again; both always read the fields as they are at call time.
// New and Copy allocate fresh collections, so two machines never share
// them unless the caller arranges it.
type DPDA struct {
	States             Set[State]
	InputSymbols       Set[InputSymbol]
	StackSymbols       Set[StackSymbol]
	Transitions        TransitionTable
	InitialState       State
	InitialStackSymbol StackSymbol
	FinalStates        Set[State]
}

// New builds a machine from its seven defining fields. Every field is
// required: a nil collection or an empty scalar fails with
// ErrMissingField. An empty but non-nil final-state list is legal; such a
// machine can still accept by emptying its stack. The collections are
// copied, so the caller's slices and table stay independent. New does not
// check the machine for consistency; that is Validate's job.
func New(
	states []State,
	inputSymbols []InputSymbol,
	stackSymbols []StackSymbol,
	transitions TransitionTable,
	initialState State,
	initialStackSymbol StackSymbol,
	finalStates []State,
) (*DPDA, error) {
	switch {
	case states == nil:
		return nil, fmt.Errorf("states: %w", ErrMissingField)
	case inputSymbols == nil:
		return nil, fmt.Errorf("input symbols: %w", ErrMissingField)
	case stackSymbols == nil:
		return nil, fmt.Errorf("stack symbols: %w", ErrMissingField)
	case transitions == nil:
		return nil, fmt.Errorf("transitions: %w", ErrMissingField)
	case initialState == "":
		return nil, fmt.Errorf("initial state: %w", ErrMissingField)
	case initialStackSymbol == "":
		return nil, fmt.Errorf("initial stack symbol: %w", ErrMissingField)
	case finalStates == nil:
		return nil, fmt.Errorf("final states: %w", ErrMissingField)
	}

	return &DPDA{
		States:             NewSet(states...),
		InputSymbols:       NewSet(inputSymbols...),
		StackSymbols:       NewSet(stackSymbols...),
		Transitions:        transitions.Copy(),
		InitialState:       initialState,
		InitialStackSymbol: initialStackSymbol,
		FinalStates:        NewSet(finalStates...),
	}, nil
}

// Copy returns a machine equal to d sharing no mutable structure with it.
// Editing the copy's transitions or sets never affects the original.
func (d *DPDA) Copy() *DPDA {
	return &DPDA{
		States:             d.States.Copy(),
		InputSymbols:       d.InputSymbols.Copy(),
		StackSymbols:       d.StackSymbols.Copy(),
		Transitions:        d.Transitions.Copy(),
		InitialState:       d.InitialState,
		InitialStackSymbol: d.InitialStackSymbol,
		FinalStates:        d.FinalStates.Copy(),
	}
}

// Equal reports whether two machines declare the same states, alphabets,
// transitions, and start and acceptance fields.
func (d *DPDA) Equal(o *DPDA) bool {
	return d.States.Equal(o.States) &&
		d.InputSymbols.Equal(o.InputSymbols) &&
		d.StackSymbols.Equal(o.StackSymbols) &&
		d.Transitions.Equal(o.Transitions) &&
		d.InitialState == o.InitialState &&
		d.InitialStackSymbol == o.InitialStackSymbol &&
		d.FinalStates.Equal(o.FinalStates)
}
