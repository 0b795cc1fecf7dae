package objstore

import "errors"

// Sentinel errors for package objstore.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File errors
	ErrExpectedFile = errors.New("expected file, got directory")

	// Naming errors
	ErrInvalidOID        = errors.New("invalid object id")
	ErrInvalidObjectPath = errors.New("invalid object path")
	ErrUnknownLayout     = errors.New("unknown object layout")

	// Object errors
	ErrObjectNotFound = errors.New("object not found")
	ErrCorruptObject  = errors.New("corrupt object")
)
