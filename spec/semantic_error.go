package spec

// SemanticError is the cause carried by a resolution failure: the
// definition parsed, but what it says does not form a machine.
type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrDirInvalidName  = newSemanticError("invalid directive name")
	semErrDirInvalidParam = newSemanticError("invalid parameter")
	semErrDuplicateDir    = newSemanticError("duplicate directive")
	semErrDuplicateRule   = newSemanticError("duplicate rule")
	semErrMissingDir      = newSemanticError("missing directive")
)
