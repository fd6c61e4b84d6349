package auth

import (
	"net/http"

	"github.com/modamall/backoffice/internal/platform/httpx"
)

// Tagged errors for the authentication flow.
var (
	ErrInvalidCredentials = &httpx.Error{
		Status:       http.StatusUnauthorized,
		Message:      "invalid user",
		ErrorMessage: "invalid_user",
	}
	ErrUnauthorized = &httpx.Error{
		Status:       http.StatusUnauthorized,
		Message:      "unauthorized",
		ErrorMessage: "login_required",
	}
)
