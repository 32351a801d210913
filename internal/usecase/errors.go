package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUserID  = errors.New("missing userId")
	ErrInvalidJobType = errors.New("invalid jobType")
	ErrForbidden      = errors.New("not allowed to act for this user")
)

// DependencyError marks a store failure, as opposed to a model-provider
// failure which is always absorbed by the fallback path.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
