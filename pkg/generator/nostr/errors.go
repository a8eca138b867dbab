package nostr

import "github.com/pkg/errors"

var (
	// ErrRandomSourceUnavailable is returned when the secure random source
	// cannot produce a usable secret key.
	ErrRandomSourceUnavailable = errors.New("secure random source unavailable")

	// ErrInvalidKeyLength is returned for raw keys that are not exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSecretKey is returned for secret keys outside [1, n-1].
	ErrInvalidSecretKey = errors.New("secret key out of range")

	// ErrUnknownRole is returned for roles (or NIP-19 prefixes) other than npub/nsec.
	ErrUnknownRole = errors.New("unknown key role")

	// ErrInvalidEncoding is returned for text that is neither valid hex nor valid NIP-19.
	ErrInvalidEncoding = errors.New("invalid key encoding")
)
