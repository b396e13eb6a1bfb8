package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
)

// Minimal internal validator to avoid external dependency. Supports:
// - required
// - email (basic shape check)
// - month (YYYY-MM, used for monthly interest entries)
// - pwdmin (min length 6)

var (
	reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	reMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// IsValidMonth reports whether s is a 4-digit year, dash, 2-digit month.
func IsValidMonth(s string) bool {
	return reMonth.MatchString(s)
}

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		fv := v.Field(i)
		var sval string
		if fv.IsValid() && fv.Kind() == reflect.String {
			sval = fv.String()
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			switch p {
			case "required":
				if sval == "" {
					return errors.New(field.Name + " is required")
				}
			case "email":
				if sval != "" && !reEmail.MatchString(sval) {
					return errors.New(field.Name + " must be a valid email address")
				}
			case "month":
				if sval != "" && !reMonth.MatchString(sval) {
					return errors.New(field.Name + " must use YYYY-MM format")
				}
			case "pwdmin":
				if len(sval) < 6 {
					return errors.New(field.Name + " must be at least 6 characters")
				}
			}
		}
	}
	return nil
}
