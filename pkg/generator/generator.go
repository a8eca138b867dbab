// Package generator defines the interface for vanity npub search.
// This design allows swapping the search backend without touching the UI,
// while key handling stays in the nostr package.
package generator

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

// ErrInvalidPattern is returned for prefixes or suffixes an npub can never contain.
var ErrInvalidPattern = errors.New("no npub can match the pattern")

// Config holds the configuration for vanity npub search.
type Config struct {
	Prefix  string // Desired npub prefix (after "npub1")
	Suffix  string // Desired npub suffix
	Workers int    // Number of concurrent workers
}

// Validate normalizes the patterns and checks that at least one can match.
func (c *Config) Validate() error {
	c.Prefix = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Prefix)), "npub1")
	c.Suffix = strings.ToLower(strings.TrimSpace(c.Suffix))

	if c.Prefix == "" && c.Suffix == "" {
		return errors.Wrap(ErrInvalidPattern, "prefix or suffix required")
	}
	if bad := nostr.InvalidChars(c.Prefix); len(bad) > 0 {
		return errors.Wrapf(ErrInvalidPattern, "prefix has %q", string(bad))
	}
	if bad := nostr.InvalidChars(c.Suffix); len(bad) > 0 {
		return errors.Wrapf(ErrInvalidPattern, "suffix has %q", string(bad))
	}
	if err := nostr.CheckPlacement(c.Prefix, c.Suffix); err != nil {
		return errors.Wrap(ErrInvalidPattern, err.Error())
	}
	return nil
}

// Result contains a key pair whose npub matched the pattern.
type Result struct {
	Keys *nostr.KeyPair // Matching key pair, owned by the receiver
	Npub string         // Encoded public key
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of keys generated
	HashRate    float64 // Current keys per second
	ElapsedSecs float64 // Time elapsed since start
}

// Generator defines the contract for vanity search backends.
type Generator interface {
	// Start begins the vanity search with the given configuration.
	// It returns a channel that will receive the result when found.
	// The channel is closed when the search ends, with or without a result.
	// The search can be cancelled via the context.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Err reports why the last search stopped without a result.
	// It is nil after a match or a cancellation.
	Err() error

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name.
	Name() string
}

// Difficulty estimates the expected number of attempts for a pattern.
// Each bech32 character carries 5 bits, except the last data character of an npub,
// which has only two possible values.
func Difficulty(prefix, suffix string) uint64 {
	bits := nostr.PatternBits(prefix, suffix)
	if bits < 0 || bits >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(bits)
}
