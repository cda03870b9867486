package pda

import (
	"errors"
	"fmt"
)

// Construction and validation failures wrap one of these sentinels, so
// callers can classify them with errors.Is.
var (
	// ErrMissingField is returned by New when a required field of the
	// machine is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidState is reported by Validate when the machine refers to
	// a state outside its declared state set.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidSymbol is reported by Validate when a transition or the
	// initial stack symbol refers to a symbol outside the declared
	// alphabets.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrNondeterminism is reported by Validate when a lambda transition
	// and another transition are defined for the same state and stack
	// top.
	ErrNondeterminism = errors.New("nondeterministic transitions")
)

// RejectionError is the failure ReadInput returns when a run halts
// without accepting. Config is the configuration the machine halted in,
// kept so callers can report where the run got stuck.
type RejectionError struct {
	Config Configuration
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("the machine rejected the input; halted at %v", e.Config)
}
