package parser

// SyntaxError is the cause a parse failure carries. The surrounding
// verr.SpecError adds the source position.
type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	// lexical errors
	synErrInvalidToken = newSyntaxError("invalid token")

	// syntax errors
	synErrEmptyDefinition = newSyntaxError("a machine definition must contain at least one directive or rule")
	synErrNoDirectiveName = newSyntaxError("a directive needs a name")
	synErrDirNoSemicolon  = newSyntaxError("a directive must end with a semicolon")
	synErrLambdaParameter = newSyntaxError("_ stands for a lambda move and cannot name a state or symbol")
	synErrNoRuleState     = newSyntaxError("a rule must begin with a state")
	synErrNoRuleInput     = newSyntaxError("a rule needs an input symbol or _ after its state")
	synErrNoRuleTop       = newSyntaxError("a rule needs a stack top symbol")
	synErrNoArrow         = newSyntaxError("-> must follow the stack top symbol")
	synErrNoRuleTarget    = newSyntaxError("a rule needs a target state after ->")
	synErrRuleNoSemicolon = newSyntaxError("a rule must end with a semicolon")
)
