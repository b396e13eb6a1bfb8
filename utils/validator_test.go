package utils

import (
	"strings"
	"testing"
)

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	invalid := []string{"2024-1", "2024/01", "202401", "2024-001", "abcd-ef", ""}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Name     string `validate:"required"`
		Email    string `validate:"email"`
		Month    string `validate:"month"`
		Password string `validate:"required,pwdmin"`
	}

	err := ValidateStruct(&form{Name: "x", Email: "x@y.com", Month: "2024-05", Password: "secret123"})
	if err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}

	if err := ValidateStruct(&form{Email: "x@y.com", Password: "secret123"}); err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("missing required field not caught: %v", err)
	}
	if err := ValidateStruct(&form{Name: "x", Email: "not-an-email", Password: "secret123"}); err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("bad email not caught: %v", err)
	}
	if err := ValidateStruct(&form{Name: "x", Month: "2024-5", Password: "secret123"}); err == nil || !strings.Contains(err.Error(), "YYYY-MM") {
		t.Fatalf("bad month not caught: %v", err)
	}
	if err := ValidateStruct(&form{Name: "x", Password: "abc"}); err == nil || !strings.Contains(err.Error(), "6 characters") {
		t.Fatalf("short password not caught: %v", err)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	if err := ValidateStruct("nope"); err == nil {
		t.Fatal("non-struct accepted")
	}
}
