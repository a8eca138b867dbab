package nwc

import (
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/Amr-9/nwcgen/internal/memzero"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

// Connection is the decoded content of a connection URI.
type Connection struct {
	WalletPubKey string // Wallet service public key, lowercase hex
	Relay        string // Relay address, percent-decoded
	Secret       string // Client secret key, lowercase hex
}

// Parse decodes a connection URI. Errors never echo the URI, since it carries a secret.
func Parse(uri string) (*Connection, error) {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidURI, "malformed uri")
	}
	if u.Scheme != Scheme {
		return nil, errors.Wrapf(ErrInvalidURI, "scheme %q, want %q", u.Scheme, Scheme)
	}
	if u.User != nil || u.Port() != "" {
		return nil, errors.Wrap(ErrInvalidURI, "authority must be the wallet public key alone")
	}
	if !isHexKey(u.Host) {
		return nil, errors.Wrap(ErrInvalidURI, "wallet public key must be 64 hex characters")
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidURI, "malformed query")
	}

	relay := q.Get(ParamRelay)
	if strings.TrimSpace(relay) == "" {
		return nil, errors.Wrap(ErrInvalidURI, "missing relay")
	}
	secret := q.Get(ParamSecret)
	if !isHexKey(secret) {
		return nil, errors.Wrap(ErrInvalidURI, "secret must be 64 hex characters")
	}

	return &Connection{
		WalletPubKey: strings.ToLower(u.Host),
		Relay:        relay,
		Secret:       strings.ToLower(secret),
	}, nil
}

// ClientKeys rebuilds the client key pair from the embedded secret.
func (c *Connection) ClientKeys() (*nostr.KeyPair, error) {
	raw, err := hex.DecodeString(c.Secret)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidURI, "secret is not hex")
	}
	defer memzero.Zero(raw)
	return nostr.FromSecret(raw)
}

// String describes the connection without the secret.
func (c *Connection) String() string {
	return Scheme + "://" + c.WalletPubKey + "?" + ParamRelay + "=" + url.QueryEscape(c.Relay) + "&" + ParamSecret + "=<redacted>"
}

func isHexKey(s string) bool {
	if len(s) != 2*nostr.KeySize {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
