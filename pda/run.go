package pda

// InitialConfiguration is where every run starts: the initial state, the
// whole input still unread, and a stack holding just the initial stack
// symbol.
func (d *DPDA) InitialConfiguration(input []InputSymbol) Configuration {
	return NewConfiguration(d.InitialState, input, NewStack(d.InitialStackSymbol))
}

// Step applies at most one transition to cfg and returns the resulting
// configuration. A lambda transition for the current state and stack top
// always takes precedence; otherwise the transition keyed by the next
// input symbol fires and consumes it. The boolean is false when no
// transition applies - the machine has halted - and cfg comes back
// unchanged. An empty stack offers no top symbol to match, so it always
// halts the machine.
//
// Step looks moves up procedurally and never consults the declared
// alphabets; run a machine through Validate first if that matters.
func (d *DPDA) Step(cfg Configuration) (Configuration, bool) {
	top, ok := cfg.stack.Top()
	if !ok {
		return cfg, false
	}

	if mv, ok := d.Transitions[TransitionKey{State: cfg.state, Input: Lambda, Top: top}]; ok {
		return NewConfiguration(mv.Next, cfg.remaining, cfg.stack.Pop().Push(mv.Push...)), true
	}

	if len(cfg.remaining) == 0 {
		return cfg, false
	}
	if mv, ok := d.Transitions[TransitionKey{State: cfg.state, Input: cfg.remaining[0], Top: top}]; ok {
		return NewConfiguration(mv.Next, cfg.remaining[1:], cfg.stack.Pop().Push(mv.Push...)), true
	}

	return cfg, false
}

// ReadInput runs the machine on input until it halts. The run accepts
// when the whole input has been consumed and the machine halted either in
// a final state or with an empty stack; ReadInput then returns the
// halting configuration. Any other halt is a rejection, returned as a
// *RejectionError carrying the configuration the machine got stuck in.
//
// Lambda transitions keep firing after the input is exhausted, so a
// machine whose lambda moves form a cycle never halts and ReadInput never
// returns. Validate does not reject such machines; avoiding lambda cycles
// is the definition author's job.
func (d *DPDA) ReadInput(input []InputSymbol) (Configuration, error) {
	cfg := d.InitialConfiguration(input)
	for {
		next, ok := d.Step(cfg)
		if !ok {
			break
		}
		cfg = next
	}

	if len(cfg.remaining) == 0 && (d.FinalStates.Contains(cfg.state) || cfg.stack.Len() == 0) {
		return cfg, nil
	}
	return Configuration{}, &RejectionError{Config: cfg}
}

// AcceptsInput reports whether the machine accepts input. It is ReadInput
// reduced to the verdict.
func (d *DPDA) AcceptsInput(input []InputSymbol) bool {
	_, err := d.ReadInput(input)
	return err == nil
}
