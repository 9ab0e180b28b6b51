package store

import "errors"

// Sentinel errors so handlers can map failures to HTTP statuses with
// errors.Is. Store functions wrap these with context.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)
