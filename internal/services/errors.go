// Package services defines the business logic for the storefront: the FAQ
// chatbot, account management, mock payments, the product catalogue, and
// newsletter signups. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrMissingFields is returned when a registration request omits the
	// name, email, or password.
	ErrMissingFields = errors.New("all fields are required")

	// ErrWeakPassword is returned when a registration password is shorter
	// than the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrDuplicateEmail indicates the email address is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound indicates the authenticated user id no longer resolves
	// to an account.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a bearer token fails signature or
	// claim validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Payment-related errors.
var (
	// ErrInvalidOrder is returned when a payment request has a non-positive
	// amount or an empty item list.
	ErrInvalidOrder = errors.New("invalid order details")

	// ErrPaymentDeclined is returned when the mock processor declines the
	// charge.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrOrderNotFound indicates the order does not exist or belongs to a
	// different user.
	ErrOrderNotFound = errors.New("order not found")
)

// Newsletter-related errors.
var (
	// ErrInvalidEmail is returned when a subscription email is blank or
	// missing an '@'.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrAlreadySubscribed indicates the email is already on the list.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
