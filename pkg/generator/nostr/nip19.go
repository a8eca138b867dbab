package nostr

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"

	"github.com/Amr-9/nwcgen/internal/memzero"
)

// Role tags an encoded key as public or secret so the two can never be confused.
type Role int

const (
	PublicRole Role = iota + 1 // npub
	SecretRole                 // nsec
)

// NIP-19 human-readable prefixes.
const (
	PublicPrefix = "npub"
	SecretPrefix = "nsec"
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case PublicRole:
		return "public"
	case SecretRole:
		return "secret"
	default:
		return "unknown"
	}
}

// Prefix returns the NIP-19 human-readable part for the role.
func (r Role) Prefix() string {
	switch r {
	case PublicRole:
		return PublicPrefix
	case SecretRole:
		return SecretPrefix
	default:
		return ""
	}
}

// RoleFromPrefix maps a NIP-19 human-readable part back to its role.
func RoleFromPrefix(hrp string) (Role, error) {
	switch strings.ToLower(hrp) {
	case PublicPrefix:
		return PublicRole, nil
	case SecretPrefix:
		return SecretRole, nil
	default:
		return 0, errors.Wrapf(ErrUnknownRole, "prefix %q", hrp)
	}
}

// Encode renders a raw 32-byte key as a NIP-19 bech32 string (npub1... or nsec1...).
func Encode(raw []byte, role Role) (string, error) {
	if len(raw) != KeySize {
		return "", errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(raw), KeySize)
	}
	hrp := role.Prefix()
	if hrp == "" {
		return "", errors.Wrapf(ErrUnknownRole, "role %d", int(role))
	}

	// Regroup 8-bit bytes into 5-bit words for bech32
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	if role == SecretRole {
		defer memzero.Zero(data)
	}

	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return encoded, nil
}

// Decode parses a NIP-19 npub/nsec string and returns its role and raw key bytes.
func Decode(s string) (Role, []byte, error) {
	hrp, data, err := bech32.Decode(strings.TrimSpace(s))
	if err != nil {
		return 0, nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	role, err := RoleFromPrefix(hrp)
	if err != nil {
		return 0, nil, err
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return 0, nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	if len(raw) != KeySize {
		return 0, nil, errors.Wrapf(ErrInvalidKeyLength, "decoded %d bytes, want %d", len(raw), KeySize)
	}
	return role, raw, nil
}

// ParseKey accepts a key as 64 hex characters or as NIP-19 text of the wanted role.
func ParseKey(s string, want Role) ([]byte, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, PublicPrefix+"1") || strings.HasPrefix(lower, SecretPrefix+"1") {
		role, raw, err := Decode(s)
		if err != nil {
			return nil, err
		}
		if role != want {
			memzero.Zero(raw)
			return nil, errors.Wrapf(ErrUnknownRole, "got %s key, want %s", role, want)
		}
		return raw, nil
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "want hex or %s", want.Prefix())
	}
	if len(raw) != KeySize {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(raw), KeySize)
	}
	return raw, nil
}
