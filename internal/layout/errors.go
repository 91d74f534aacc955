package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pagination pipeline.
var (
	ErrHeightsMismatch       = errors.New("layout: heights do not match blocks")
	ErrInvalidHeight         = errors.New("layout: invalid block height")
	ErrInvalidGeometry       = errors.New("layout: invalid page geometry")
	ErrMeasurementIncomplete = errors.New("layout: measurement incomplete")
)

// Error records the pipeline phase that failed.
type Error struct {
	Op  string // phase, e.g. "measure", "pack"
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layout.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("layout.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, err error) *Error { return &Error{Op: op, Err: err} }
