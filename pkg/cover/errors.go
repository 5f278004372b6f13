package cover

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is returned when no subset of the books covers the target topics.
	ErrInfeasible = errors.New("no selection of books covers all topics")
	// ErrTooManyBooks is returned when a solver was configured with a book limit and the input exceeds it.
	ErrTooManyBooks = errors.New("too many books for exhaustive search")
)

// InvalidBookError reports a book which can't take part in a solve.
type InvalidBookError struct {
	Index  int
	Reason string
}

func (e *InvalidBookError) Error() string {
	return fmt.Sprintf("book %d is invalid: %s", e.Index, e.Reason)
}
