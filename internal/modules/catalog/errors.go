package catalog

import "errors"

var (
	ErrValidation = errors.New("invalid catalog entry")
	ErrNotFound   = errors.New("catalog entry not found")
)
