package services

import "errors"

// NotFoundError covers an absent resource, an edit/delete predicate that
// matched no owned row, and a page past the last record. The message is
// what the caller reports; ownership failures deliberately read the same
// as missing rows.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError carries the field messages for malformed input. The
// operation it guards is never attempted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
