package common

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRootNotFound is matched by the convergence errors of every root finder
// in this module. Use errors.Is to check for it.
var ErrRootNotFound = errors.New("root not found")

// ErrInvalidArgument is returned when a setting or input cannot be used to
// start the iteration.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "StepSize"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %v is invalid for field %q; %s", err.Value, err.Name, err.Message)
}

// InvalidArgument returns an ErrInvalidArgument annotated with a stack trace
func InvalidArgument(name string, value interface{}, message string) error {
	return errors.WithStack(&ErrInvalidArgument{
		Name:    name,
		Value:   value,
		Message: message,
	})
}
