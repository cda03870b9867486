package pda

// State identifies one of a machine's finitely many states.
type State string

// InputSymbol is a member of a machine's input alphabet.
type InputSymbol string

// StackSymbol is a member of a machine's stack alphabet.
type StackSymbol string

// Lambda marks a transition that consumes no input. It is not a member of
// any input alphabet.
const Lambda InputSymbol = ""

// Symbols splits s into single-rune input symbols. It is the conventional
// way to turn a plain string into input for ReadInput and AcceptsInput.
// Callers whose alphabets contain multi-rune symbols can assemble the
// slice themselves instead.
func Symbols(s string) []InputSymbol {
	syms := make([]InputSymbol, 0, len(s))
	for _, c := range s {
		syms = append(syms, InputSymbol(c))
	}
	return syms
}
