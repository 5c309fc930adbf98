package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAmbiguousName    = errors.New("multiple employees match the given name")
)
