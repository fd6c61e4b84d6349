package httpx

import (
	"errors"
	"net/http"
)

// Error is a tagged domain error. Business rules return (possibly wrapped)
// *Error values; RespondError resolves the tag and writes the
// {message, errorMessage} body with the carried status code.
type Error struct {
	Status       int
	Message      string
	ErrorMessage string
}

func (e *Error) Error() string {
	return e.ErrorMessage
}

// errorBody is the failure body shape: {"message": ..., "errorMessage": ...}.
type errorBody struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"errorMessage"`
}

// BadRequest builds a 400 error.
func BadRequest(message, errorMessage string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, ErrorMessage: errorMessage}
}

// Forbidden builds a 403 error.
func Forbidden(message, errorMessage string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message, ErrorMessage: errorMessage}
}

// NotFound builds a 404 error.
func NotFound(message, errorMessage string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message, ErrorMessage: errorMessage}
}

// PayloadTooLarge builds a 413 error for file policy violations.
func PayloadTooLarge(message, errorMessage string) *Error {
	return &Error{Status: http.StatusRequestEntityTooLarge, Message: message, ErrorMessage: errorMessage}
}

// Internal builds a 500 error.
func Internal(message, errorMessage string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, ErrorMessage: errorMessage}
}

// RespondError maps err onto an HTTP response. Tagged errors keep their
// status and body; anything else is reported as an unclassified 500.
func RespondError(w http.ResponseWriter, err error) {
	var tagged *Error
	if errors.As(err, &tagged) {
		JSON(w, tagged.Status, errorBody{Message: tagged.Message, ErrorMessage: tagged.ErrorMessage})
		return
	}
	JSON(w, http.StatusInternalServerError, errorBody{
		Message:      "internal_server_error",
		ErrorMessage: "internal_server_error",
	})
}
