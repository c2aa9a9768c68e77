package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("actor is forbidden to access the resource")

	// * Business errors.
	ErrEmptyCart               = errors.New("cart has no items")
	ErrInvalidTransition       = errors.New("order status transition is not allowed")
	ErrWrongPaymentMethod      = errors.New("operation does not match the order payment method")
	ErrNotAwaitingVerification = errors.New("payment is not awaiting verification")
	ErrAlreadyProcessed        = errors.New("payment already processed")
	ErrInsufficientStock       = errors.New("not enough stock for product")
	ErrInvalidSignature        = errors.New("gateway signature is invalid")
	ErrUnknownProvider         = errors.New("unknown payment provider")
)
