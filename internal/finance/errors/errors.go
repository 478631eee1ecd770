package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single field-addressed rule violation.
type ValidationError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ValidationErrors accumulates every violation found in one validation
// pass so the caller can report them together.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(field, msg string) {
	ve.Errors = append(ve.Errors, NewValidationError(field, msg))
}

// HasField reports whether a violation was already recorded for the
// given field path. Cross-field rules use it to skip checks whose
// prerequisite field is already invalid.
func (ve *ValidationErrors) HasField(field string) bool {
	for _, err := range ve.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ErrOrNil returns the accumulator as an error, or nil when no
// violation was recorded.
func (ve *ValidationErrors) ErrOrNil() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	return errors.As(err, &validationErrors)
}

func AsValidationErrors(err error) (*ValidationErrors, bool) {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return validationErrors, ok
}

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGoalNotFound        = errors.New("goal not found")

	// ErrCategoryInUse blocks deletion of a category that is still
	// referenced by at least one transaction.
	ErrCategoryInUse = errors.New("category is used by transactions")
)
