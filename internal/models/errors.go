package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrMovementNotFound = errors.New("movement not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrSalesClosed      = errors.New("event is not on sale")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateEntry   = errors.New("duplicate entry")
)
