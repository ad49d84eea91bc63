package apperr

import "errors"

var (
	ErrMissingSource = errors.New("missing source")
	ErrConflict      = errors.New("conflict")
)
