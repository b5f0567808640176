package services

import "lablend/internal/core/validation"

// ValidationError carries the complete field error map produced by an
// entity validator. It blocks persistence: a candidate that fails
// validation never reaches a repository.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "datos inválidos"
}
