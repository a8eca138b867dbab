package nostr

import (
	"strings"
)

// npubHead is the fixed start of every npub; user prefixes match after it.
const npubHead = PublicPrefix + "1"

// NpubMatcher handles pattern matching for npub strings.
// Bech32 is case-insensitive, so patterns and npubs are compared as lowercase.
type NpubMatcher struct {
	prefix string
	suffix string
}

// NewNpubMatcher creates a new npub matcher.
// A leading "npub1" on the prefix is ignored.
func NewNpubMatcher(prefix, suffix string) *NpubMatcher {
	prefix = strings.TrimPrefix(strings.ToLower(prefix), npubHead)
	return &NpubMatcher{
		prefix: prefix,
		suffix: strings.ToLower(suffix),
	}
}

// Matches checks if an npub matches the prefix and suffix criteria.
// The prefix is matched right after "npub1".
func (m *NpubMatcher) Matches(npub string) bool {
	npub = strings.ToLower(npub)
	if !strings.HasPrefix(npub, npubHead) {
		return false
	}
	body := npub[len(npubHead):]

	if m.prefix != "" && !strings.HasPrefix(body, m.prefix) {
		return false
	}

	// The last six characters are the checksum, still fair game for a suffix
	if m.suffix != "" && !strings.HasSuffix(body, m.suffix) {
		return false
	}

	return true
}
