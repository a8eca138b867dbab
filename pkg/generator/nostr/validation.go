package nostr

import (
	"strings"

	"github.com/pkg/errors"
)

// Bech32 charset (excludes 1, b, i, o to prevent ambiguity)
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// IsValidBech32Char checks if a character can appear in the data part of an npub.
func IsValidBech32Char(c rune) bool {
	return strings.ContainsRune(bech32Charset, c)
}

// IsValidPattern checks if a vanity pattern can ever match an npub.
func IsValidPattern(pattern string) bool {
	return len(InvalidChars(pattern)) == 0
}

// InvalidChars returns any characters in the pattern that bech32 cannot produce.
func InvalidChars(pattern string) []rune {
	var invalid []rune
	for _, c := range strings.TrimPrefix(strings.ToLower(pattern), npubHead) {
		if !IsValidBech32Char(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

const (
	// NpubBodyLen is the length of an npub after "npub1": 52 data characters and a 6 character checksum.
	NpubBodyLen = 58

	// padIndex is the last data character. It carries one key bit and four zero pad bits,
	// so it is always q or s.
	padIndex = 51
)

// layout places prefix at the start and suffix at the end of an npub body.
// Positions neither pattern covers are left zero.
func layout(prefix, suffix string) ([NpubBodyLen]byte, error) {
	var body [NpubBodyLen]byte
	if len(prefix) > NpubBodyLen {
		return body, errors.Errorf("prefix longer than %d characters", NpubBodyLen)
	}
	if len(suffix) > NpubBodyLen {
		return body, errors.Errorf("suffix longer than %d characters", NpubBodyLen)
	}

	copy(body[:], prefix)
	off := NpubBodyLen - len(suffix)
	for i := 0; i < len(suffix); i++ {
		if body[off+i] != 0 && body[off+i] != suffix[i] {
			return body, errors.Errorf("prefix and suffix overlap with different characters at position %d", off+i+1)
		}
		body[off+i] = suffix[i]
	}

	if c := body[padIndex]; c != 0 && c != 'q' && c != 's' {
		return body, errors.Errorf("character %d of an npub is always q or s, pattern has %q", padIndex+len(npubHead)+1, c)
	}
	return body, nil
}

// CheckPlacement reports why no npub can start with prefix and end with suffix.
// Both patterns must be lowercase with the npub1 head removed.
func CheckPlacement(prefix, suffix string) error {
	_, err := layout(prefix, suffix)
	return err
}

// PatternBits returns how many bits of an npub the patterns fix, or -1 if they cannot match.
func PatternBits(prefix, suffix string) int {
	body, err := layout(prefix, suffix)
	if err != nil {
		return -1
	}
	bits := 0
	for i, c := range body {
		switch {
		case c == 0:
		case i == padIndex:
			bits++
		default:
			bits += 5
		}
	}
	return bits
}
