package handlers

import "errors"

var (
	// ErrInvalidInput marks malformed caller data: bad ids, too few points,
	// non-numeric coordinates. The caller fixes the request; nothing is
	// retried here.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLandRecordNotFound marks a parcel that does not exist or has been
	// retired.
	ErrLandRecordNotFound = errors.New("land record not found")

	// ErrCorruptBoundary marks a stored ring with fewer than the minimum
	// vertices. The write path makes this impossible, so hitting it means
	// the table was edited outside the service.
	ErrCorruptBoundary = errors.New("stored boundary ring is corrupt")
)
