package request

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("request does not exist")
	ErrForbidden         = errors.New("no authorization")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrInvalidState      = errors.New("request is not in a modifiable state")
	ErrRequestClosed     = errors.New("cannot modify this request")
	ErrNothingToUpdate   = errors.New("no modifiable requests matched")
)
