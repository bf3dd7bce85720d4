package booking

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the booking domain.
const (
	CodeValidation            = "validation"
	CodeInvalidReference      = "invalidReference"
	CodeInsufficientInventory = "insufficientInventory"
	CodeInvalidSignature      = "invalidSignature"
	CodeNotFound              = "notFound"
	CodeConflictingTransition = "conflictingTransition"
	CodeDownstream            = "downstream"
)

// Error is a coded service error. Message is safe to surface to the
// caller; Code drives the HTTP status mapping.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewInvalidReferenceError(msg string) error {
	return &Error{Code: CodeInvalidReference, Message: msg}
}

func NewInsufficientInventoryError(msg string) error {
	return &Error{Code: CodeInsufficientInventory, Message: msg}
}

func NewInvalidSignatureError(msg string) error {
	return &Error{Code: CodeInvalidSignature, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewConflictingTransitionError(msg string) error {
	return &Error{Code: CodeConflictingTransition, Message: msg}
}

func NewDownstreamError(msg string) error {
	return &Error{Code: CodeDownstream, Message: msg}
}

// IsCode reports whether err is a booking Error with the given code.
func IsCode(err error, code string) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// HTTPStatus maps a service error to the HTTP status the handlers use.
// Unknown errors are treated as downstream failures.
func HTTPStatus(err error) int {
	var se *Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	switch se.Code {
	case CodeValidation, CodeInvalidReference, CodeInsufficientInventory, CodeInvalidSignature:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflictingTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
