// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic constants are mapped to HTTP responses via the fail()
// helper. Generic codes mirror common HTTP status semantics; domain-specific
// codes cover business failures that the status alone cannot convey (for
// example a declined mock payment, which is not a client error in the
// bad-request sense).
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeWeakPassword       = "weak_password"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodePaymentDeclined    = "payment_declined"
	ErrCodeInvalidOrder       = "invalid_order"
	ErrCodeInvalidEmail       = "invalid_email"
	ErrCodeAskFailed          = "ask_failed"
	ErrCodeListFailed         = "list_failed"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
