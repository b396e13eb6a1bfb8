package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantError  string
	}{
		{NewValidationError("bad input"), http.StatusBadRequest, "Validation Error"},
		{NewNotFoundError("gone"), http.StatusNotFound, "Not Found"},
		{NewAuthError("nope"), http.StatusUnauthorized, "Authentication Failed"},
		{errors.New("db exploded"), http.StatusInternalServerError, "Server Error"},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, c.err)

		if rec.Code != c.wantStatus {
			t.Errorf("%v: status = %d, want %d", c.err, rec.Code, c.wantStatus)
		}
		var body APIError
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: bad body: %v", c.err, err)
		}
		if body.Error != c.wantError {
			t.Errorf("%v: error = %q, want %q", c.err, body.Error, c.wantError)
		}
	}
}

func TestWriteError_InternalMessageNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("password for root is hunter2"))

	var body APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Message != "An unexpected error occurred" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	if !IsDuplicateKeyError(errors.New("Error 1062: Duplicate entry 'x' for key 'users.username'")) {
		t.Error("mysql duplicate not detected")
	}
	if !IsDuplicateKeyError(errors.New("UNIQUE constraint failed: users.email")) {
		t.Error("sqlite duplicate not detected")
	}
	if IsDuplicateKeyError(errors.New("connection refused")) {
		t.Error("unrelated error misclassified")
	}
	if IsDuplicateKeyError(nil) {
		t.Error("nil misclassified")
	}
}
