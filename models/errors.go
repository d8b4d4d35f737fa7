package models

import "errors"

// Domain error kinds returned by the lifecycle services. Controllers map
// these onto HTTP status codes; the services never retry internally.
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrOutOfRange       = errors.New("value out of allowed range")
	ErrCapacityExceeded = errors.New("internship capacity reached")
)
