package fused

import (
	"errors"
	"fmt"
)

// ErrNoNumber reports that the bytes at the current position do not form
// a numeric literal.
var ErrNoNumber = errors.New("no numeric literal")

// InvalidStreamError reports a candidate member that does not satisfy the
// stream capability contract. Position is the 1-based place the stream
// would have taken in the member sequence.
type InvalidStreamError struct {
	Position int
	cause    error
}

func (e *InvalidStreamError) Error() (msg string) {
	if e.cause != nil {
		return fmt.Sprintf("invalid stream at position %d: %v", e.Position, e.cause)
	}
	return fmt.Sprintf("invalid stream at position %d", e.Position)
}

func (e *InvalidStreamError) Unwrap() (err error) { return e.cause }
