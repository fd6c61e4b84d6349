// Package httpx provides JSON response utilities shared by the HTTP handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// envelope is the success body shape: {"message": "success", "result": ...}.
type envelope struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// JSON sends a raw JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Success sends a 200 envelope with an optional result payload.
func Success(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, envelope{Message: "success", Result: result})
}

// Created sends a 201 envelope with an optional result payload.
func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, envelope{Message: "success", Result: result})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
