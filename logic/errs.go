package logic

import "errors"

var (
	ErrUnassigned = errors.New("unassigned atom")
)
