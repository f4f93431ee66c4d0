package services

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	// ErrInvalidJobID covers malformed job identities and reference lookups
	// that fail for any reason other than a missing document.
	ErrInvalidJobID = errors.New("services: invalid job id")

	// ErrJobNotFound means the identity parsed but no such job exists.
	ErrJobNotFound = errors.New("services: job not found")

	// ErrInvalidApplication wraps application payload validation failures.
	ErrInvalidApplication = errors.New("services: invalid application")
)
