package nwc

import "github.com/pkg/errors"

var (
	// ErrMissingClientKey is returned when no client secret key is supplied.
	ErrMissingClientKey = errors.New("client secret key is required")

	// ErrMissingRelay is returned when the relay address is empty or blank.
	ErrMissingRelay = errors.New("relay address is required")

	// ErrInvalidURI is returned by Parse for anything that is not a well-formed connection URI.
	ErrInvalidURI = errors.New("invalid wallet connect uri")
)
