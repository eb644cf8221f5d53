package structures

import "errors"

var (
	ErrNotFound   = errors.New("structure not found")
	ErrForbidden  = errors.New("structure belongs to another operator")
	ErrValidation = errors.New("invalid structure request")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeForbidden  = "forbidden"
	ErrorCodeStorage    = "storage_error"
	ErrorCodeInternal   = "internal_error"
)
