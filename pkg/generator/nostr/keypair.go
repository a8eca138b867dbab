// Package nostr provides Nostr identity key generation and NIP-19 key encoding.
// Keys are secp256k1; public keys are the 32-byte x-only (BIP-340) form.
package nostr

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/pkg/errors"

	"github.com/Amr-9/nwcgen/internal/memzero"
)

// KeySize is the width of raw secret and public keys.
const KeySize = 32

// maxDraws bounds how many out-of-range scalars we tolerate before giving up on the reader.
const maxDraws = 16

// KeyPair is an immutable secp256k1 key pair.
// The zero value is not usable; build one with Generate or FromSecret.
type KeyPair struct {
	secret [KeySize]byte
	public [KeySize]byte
}

// KeyGenerator draws fresh key pairs from Rand.
// A nil Rand uses crypto/rand. KeyGenerator holds no other state and is safe for concurrent use
// when Rand is.
type KeyGenerator struct {
	Rand io.Reader
}

// NewKeyGenerator creates a generator reading entropy from r.
func NewKeyGenerator(r io.Reader) *KeyGenerator {
	return &KeyGenerator{Rand: r}
}

// GenerateKeyPair generates a new random key pair using crypto/rand.
func GenerateKeyPair() (*KeyPair, error) {
	return (&KeyGenerator{}).Generate()
}

// Generate returns a key pair whose secret is uniform in [1, n-1].
func (g *KeyGenerator) Generate() (*KeyPair, error) {
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}

	var buf [KeySize]byte
	defer memzero.Zero(buf[:])

	// Rejection sampling: a 32-byte draw lands outside [1, n-1] with probability ~2^-128
	for i := 0; i < maxDraws; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, errors.Wrap(ErrRandomSourceUnavailable, err.Error())
		}
		if validScalar(buf[:]) {
			return derive(buf[:]), nil
		}
	}
	return nil, errors.Wrapf(ErrRandomSourceUnavailable, "%d draws outside the curve order", maxDraws)
}

// FromSecret rebuilds the key pair for an existing 32-byte secret key.
func FromSecret(sk []byte) (*KeyPair, error) {
	if len(sk) != KeySize {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(sk), KeySize)
	}
	if !validScalar(sk) {
		return nil, ErrInvalidSecretKey
	}
	return derive(sk), nil
}

// validScalar reports whether b is a secp256k1 scalar in [1, n-1].
func validScalar(b []byte) bool {
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(b)
	ok := !overflow && !s.IsZero()
	s.Zero()
	return ok
}

// derive computes the x-only public key for sk. sk must already be a valid scalar.
func derive(sk []byte) *KeyPair {
	priv, pub := btcec.PrivKeyFromBytes(sk)
	defer priv.Zero()

	kp := &KeyPair{}
	copy(kp.secret[:], sk)
	copy(kp.public[:], schnorr.SerializePubKey(pub))
	return kp
}

// SecretKey returns a copy of the raw secret key.
func (kp *KeyPair) SecretKey() [KeySize]byte {
	return kp.secret
}

// PublicKey returns a copy of the raw x-only public key.
func (kp *KeyPair) PublicKey() [KeySize]byte {
	return kp.public
}

// SecretHex returns the secret key as lowercase hex.
func (kp *KeyPair) SecretHex() string {
	return hex.EncodeToString(kp.secret[:])
}

// PublicHex returns the public key as lowercase hex.
func (kp *KeyPair) PublicHex() string {
	return hex.EncodeToString(kp.public[:])
}

// Npub returns the NIP-19 encoding of the public key.
func (kp *KeyPair) Npub() string {
	s, _ := Encode(kp.public[:], PublicRole)
	return s
}

// Nsec returns the NIP-19 encoding of the secret key.
func (kp *KeyPair) Nsec() string {
	s, _ := Encode(kp.secret[:], SecretRole)
	return s
}

// Zero wipes both halves of the pair. The pair must not be used afterwards.
func (kp *KeyPair) Zero() {
	memzero.Zero(kp.secret[:])
	memzero.Zero(kp.public[:])
}

// String identifies the pair by its npub so a stray %v never prints the secret.
func (kp *KeyPair) String() string {
	return "KeyPair(" + kp.Npub() + ")"
}

// GoString keeps %#v from dumping the secret array.
func (kp *KeyPair) GoString() string {
	return kp.String()
}
