package imp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUndeclaredVariable is matched by every *UndeclaredVariableError.
var ErrUndeclaredVariable = errors.New("undeclared variable")

// UndeclaredVariableError is returned when a traversal looks up a name that
// must already be bound. The program is invalid input; the traversal stops.
type UndeclaredVariableError struct {
	Name string
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("undeclared variable %q", e.Name)
}

func (e *UndeclaredVariableError) Is(target error) bool {
	return target == ErrUndeclaredVariable
}

// Diagnostic messages reported through the stderr sink. None of them are
// fatal; the offending statement just has no effect.
const (
	diagUndefinedValue = "assignment to %s rejected: value %s is undefined"
	diagUndefinedVar   = "assignment to %s rejected: variable is undefined"
	diagKindMismatch   = "assignment to %s rejected: cannot assign %s value to %s variable"
	diagIfCondition    = "if condition %s is not a boolean: got %s"
	diagWhileCondition = "while condition %s is not a boolean: got %s"
)
