package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access only")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing fields")
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidPrice       = errors.New("price must be a non-negative number")
	ErrTableBooked        = errors.New("table already booked")
	ErrOrderInFlight      = errors.New("order with this idempotency key is still being processed")
)
