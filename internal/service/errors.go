package service

import "errors"

// Sentinel errors let handlers pick the right status code without string
// matching. Everything else coming out of a service is treated as internal.
var (
	ErrNotFound = errors.New("not found")

	// ErrNotOwner: a staff user tried to mutate a cloth managed by someone else.
	ErrNotOwner = errors.New("not authorized to edit this item")

	// ErrUnauthorized deliberately covers both bad credentials and non-staff
	// accounts so login failures don't reveal which one it was.
	ErrUnauthorized = errors.New("invalid credentials or not authorized")
)
