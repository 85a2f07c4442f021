package services

import (
	"net/http"

	apperrors "sankalp/pkg/errors"
)

// Envelope texts shared by every form endpoint.
const (
	MessageValidationFailed = "Validation failed"
	MessageInternalError    = "Internal server error"
	ErrorBodyNotObject      = "Request body must be a JSON object"
)

// HTTPStatus maps an error returned by a service to its HTTP status code.
func HTTPStatus(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeDuplicate:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FailureText returns the envelope message and error for err. Client errors
// carry their own text; anything else is reported with fallback only, so
// I/O details never reach the caller.
func FailureText(err error, fallback string) (message, detail string) {
	appErr, ok := apperrors.As(err)
	if !ok {
		return MessageInternalError, fallback
	}
	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeDuplicate:
		return appErr.Message, appErr.Detail()
	case apperrors.ErrCodeNotFound:
		return appErr.Message, appErr.Message
	default:
		return MessageInternalError, fallback
	}
}
