// Package errors provides custom error types for the roster service.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ValidationError          │ 400    │ Missing or malformed input          │
//	│ InvalidCredentialsError  │ 401    │ Login failed (no account hint)      │
//	│ TokenMalformedError      │ 401    │ Bearer token could not be parsed    │
//	│ TokenExpiredError        │ 401    │ Token past its expiry               │
//	│ TokenSignatureError      │ 401    │ Signature does not verify           │
//	│ ResourceNotFoundError    │ 404    │ Requested resource doesn't exist    │
//	│ DuplicateKeyError        │ 409    │ Uniqueness constraint violated      │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// The three token failure kinds are deliberately distinct types: the auth
// middleware reports all of them as the same generic 401 so callers cannot
// probe which check failed, while logs and tests can still tell them apart
// through the Is* helpers. IsTokenError matches any of the three.
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	func IsDuplicateKeyError(err error) bool {
//	    var e *DuplicateKeyError
//	    return errors.As(err, &e)
//	}
//
// This allows checking wrapped errors:
//
//	wrapped := fmt.Errorf("creating user: %w", errors.NewDuplicateKeyError("Email"))
//	errors.IsDuplicateKeyError(wrapped) // returns true
//
// # Handler Error Mapping
//
// Handlers map errors to HTTP status codes:
//
//	switch {
//	case errors.IsValidationError(err):
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	case errors.IsDuplicateKeyError(err):
//	    c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
//	case errors.IsResourceNotFoundError(err):
//	    c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
//	}
package errors
