package errors

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed or missing input.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidationError checks if the error is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// DuplicateKeyError indicates a storage uniqueness constraint was violated.
type DuplicateKeyError struct {
	Field string
}

func NewDuplicateKeyError(field string) *DuplicateKeyError {
	return &DuplicateKeyError{Field: field}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// IsDuplicateKeyError checks if the error is a DuplicateKeyError.
func IsDuplicateKeyError(err error) bool {
	var e *DuplicateKeyError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
}

func NewResourceNotFoundError(kind string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind}
}

func NewUserNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("user")
}

func NewCollaboratorNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("collaborator")
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// IsResourceNotFoundError checks if the error is a ResourceNotFoundError.
func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// InvalidCredentialsError indicates a failed login. User-not-found and
// wrong-password both map here so responses cannot be used to enumerate
// accounts.
type InvalidCredentialsError struct{}

func NewInvalidCredentialsError() *InvalidCredentialsError {
	return &InvalidCredentialsError{}
}

func (e *InvalidCredentialsError) Error() string {
	return "Invalid credentials"
}

// IsInvalidCredentialsError checks if the error is an InvalidCredentialsError.
func IsInvalidCredentialsError(err error) bool {
	var e *InvalidCredentialsError
	return errors.As(err, &e)
}

// TokenMalformedError indicates a bearer token that could not be parsed.
type TokenMalformedError struct{}

func NewTokenMalformedError() *TokenMalformedError {
	return &TokenMalformedError{}
}

func (e *TokenMalformedError) Error() string {
	return "token malformed"
}

// IsTokenMalformedError checks if the error is a TokenMalformedError.
func IsTokenMalformedError(err error) bool {
	var e *TokenMalformedError
	return errors.As(err, &e)
}

// TokenExpiredError indicates a token past its expiry instant.
type TokenExpiredError struct{}

func NewTokenExpiredError() *TokenExpiredError {
	return &TokenExpiredError{}
}

func (e *TokenExpiredError) Error() string {
	return "token expired"
}

// IsTokenExpiredError checks if the error is a TokenExpiredError.
func IsTokenExpiredError(err error) bool {
	var e *TokenExpiredError
	return errors.As(err, &e)
}

// TokenSignatureError indicates a token whose signature does not verify
// under the current signing key.
type TokenSignatureError struct{}

func NewTokenSignatureError() *TokenSignatureError {
	return &TokenSignatureError{}
}

func (e *TokenSignatureError) Error() string {
	return "token signature invalid"
}

// IsTokenSignatureError checks if the error is a TokenSignatureError.
func IsTokenSignatureError(err error) bool {
	var e *TokenSignatureError
	return errors.As(err, &e)
}

// IsTokenError reports whether the error is any of the token failure kinds.
// The HTTP layer collapses all three into a single 401; logs keep them apart.
func IsTokenError(err error) bool {
	return IsTokenMalformedError(err) || IsTokenExpiredError(err) || IsTokenSignatureError(err)
}
