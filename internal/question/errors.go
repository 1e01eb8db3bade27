package question

import (
	"errors"
	"fmt"
)

// ErrMalformedStructure indicates an option or success marker with no
// question in progress.
var ErrMalformedStructure = errors.New("malformed quiz structure")

// MalformedError reports where a malformed-structure fault occurred.
type MalformedError struct {
	Line int
	Kind LineKind
	Text string
}

// Error returns a readable message including the 1-based line number.
func (err *MalformedError) Error() string {
	return fmt.Sprintf("line %d: %s %q appears before any question", err.Line, err.Kind, err.Text)
}

// Unwrap lets errors.Is match ErrMalformedStructure.
func (err *MalformedError) Unwrap() error {
	return ErrMalformedStructure
}
