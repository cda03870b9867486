package pda

import "fmt"

// Validate checks the machine against four well-formedness rules:
//
//  1. every symbol the transitions mention lies in the proper alphabet
//  2. a lambda transition is the only transition for its state and
//     stack top
//  3. every state the machine refers to lies in the state set
//  4. the initial stack symbol lies in the stack alphabet
//
// The rules are checked in that order and the first violation is
// returned, wrapping ErrInvalidSymbol, ErrNondeterminism, or
// ErrInvalidState. Validate reads the fields as they are now; after
// editing the machine, call it again.
func (d *DPDA) Validate() error {
	if err := d.checkTransitionSymbols(); err != nil {
		return err
	}
	if err := d.checkDeterminism(); err != nil {
		return err
	}
	if err := d.checkStates(); err != nil {
		return err
	}
	return d.checkInitialStackSymbol()
}

func (d *DPDA) checkTransitionSymbols() error {
	for _, k := range d.Transitions.sortedKeys() {
		if k.Input != Lambda && !d.InputSymbols.Contains(k.Input) {
			return fmt.Errorf("transition %v: input symbol %q is not in the input alphabet: %w", k, string(k.Input), ErrInvalidSymbol)
		}
		if !d.StackSymbols.Contains(k.Top) {
			return fmt.Errorf("transition %v: stack symbol %q is not in the stack alphabet: %w", k, string(k.Top), ErrInvalidSymbol)
		}
		for _, sym := range d.Transitions[k].Push {
			if !d.StackSymbols.Contains(sym) {
				return fmt.Errorf("transition %v: pushed symbol %q is not in the stack alphabet: %w", k, string(sym), ErrInvalidSymbol)
			}
		}
	}
	return nil
}

// checkDeterminism rejects tables where a lambda move competes with any
// other move. A lambda transition for a state and stack top fires
// unconditionally, so a second transition on the same pair would leave
// the machine with a choice.
func (d *DPDA) checkDeterminism() error {
	type pair struct {
		state State
		top   StackSymbol
	}
	lambdas := map[pair]struct{}{}
	for k := range d.Transitions {
		if k.Input == Lambda {
			lambdas[pair{state: k.State, top: k.Top}] = struct{}{}
		}
	}
	if len(lambdas) == 0 {
		return nil
	}
	for _, k := range d.Transitions.sortedKeys() {
		if k.Input == Lambda {
			continue
		}
		if _, ok := lambdas[pair{state: k.State, top: k.Top}]; ok {
			return fmt.Errorf("state %v with stack top %q has both a lambda transition and a transition on %q: %w",
				string(k.State), string(k.Top), string(k.Input), ErrNondeterminism)
		}
	}
	return nil
}

func (d *DPDA) checkStates() error {
	if !d.States.Contains(d.InitialState) {
		return fmt.Errorf("initial state %v is not in the state set: %w", string(d.InitialState), ErrInvalidState)
	}
	for _, s := range d.FinalStates.Sorted() {
		if !d.States.Contains(s) {
			return fmt.Errorf("final state %v is not in the state set: %w", string(s), ErrInvalidState)
		}
	}
	for _, k := range d.Transitions.sortedKeys() {
		if !d.States.Contains(k.State) {
			return fmt.Errorf("transition %v: state %v is not in the state set: %w", k, string(k.State), ErrInvalidState)
		}
		if next := d.Transitions[k].Next; !d.States.Contains(next) {
			return fmt.Errorf("transition %v: target state %v is not in the state set: %w", k, string(next), ErrInvalidState)
		}
	}
	return nil
}

func (d *DPDA) checkInitialStackSymbol() error {
	if !d.StackSymbols.Contains(d.InitialStackSymbol) {
		return fmt.Errorf("initial stack symbol %q is not in the stack alphabet: %w", string(d.InitialStackSymbol), ErrInvalidSymbol)
	}
	return nil
}
