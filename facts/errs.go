package facts

import "errors"

var (
	ErrValidation   = errors.New("invalid quantifier argument")
	ErrUnknownClass = errors.New("unknown class")
)
