package pricing

import "errors"

var (
	// ErrNotFound marks a referenced catalog entry that does not resolve.
	ErrNotFound = errors.New("catalog reference not found")
	// ErrValidation marks a structurally invalid draft (e.g. no costume lines).
	ErrValidation = errors.New("invalid request draft")
)
