package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrFormSubmitted is returned for edits after a successful submission.
	ErrFormSubmitted = errors.New("form already submitted")
	// ErrNoNextStep is returned by Next at the last step.
	ErrNoNextStep = errors.New("already at the last step")
)

// IncompleteError reports a required field that is still empty.
type IncompleteError struct{ Field Field }

func (e IncompleteError) Error() string { return fmt.Sprintf("%s is required", e.Field) }

// IsIncomplete reports whether err is an IncompleteError.
func IsIncomplete(err error) bool {
	var ie IncompleteError
	return errors.As(err, &ie)
}

type stepRangeError struct{ step int }

func (e stepRangeError) Error() string {
	return fmt.Sprintf("step %d out of range [%d,%d]", e.step, FirstStep, LastStep)
}
