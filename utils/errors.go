package utils

import (
	"errors"
	"log"
	"net/http"
	"strings"
)

// Typed errors raised by the service layer. Handlers do not branch on them
// directly; WriteError maps each kind to its HTTP status and envelope.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func NewValidationError(msg string) error { return &ValidationError{Message: msg} }
func NewNotFoundError(msg string) error   { return &NotFoundError{Message: msg} }
func NewAuthError(msg string) error       { return &AuthError{Message: msg} }

// IsDuplicateKeyError reports whether err is a unique-constraint violation
// from the underlying store (MySQL 1062 or SQLite UNIQUE).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// WriteError translates a service error into an HTTP response. Unclassified
// errors are logged and returned as a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	var nfe *NotFoundError
	var ae *AuthError

	switch {
	case errors.As(err, &ve):
		WriteJSON(w, http.StatusBadRequest, APIError{Error: "Validation Error", Message: ve.Message})
	case errors.As(err, &nfe):
		WriteJSON(w, http.StatusNotFound, APIError{Error: "Not Found", Message: nfe.Message})
	case errors.As(err, &ae):
		WriteJSON(w, http.StatusUnauthorized, APIError{Error: "Authentication Failed", Message: ae.Message})
	default:
		log.Printf("[error] unhandled: %v", err)
		WriteJSON(w, http.StatusInternalServerError, APIError{Error: "Server Error", Message: "An unexpected error occurred"})
	}
}
