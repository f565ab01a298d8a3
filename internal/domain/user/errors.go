package user

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("wrong password")
	ErrBlocked             = errors.New("access denied, account is blocked")
	ErrAccessDenied        = errors.New("access denied")
	ErrAdminSelfBlock      = errors.New("administrator cannot block own account")
	ErrCredentialsMismatch = errors.New("enter your own email and password")
	ErrReauthFailed        = errors.New("credentials confirmation failed")
)

// ValidationError carries per-field messages for missing or malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
