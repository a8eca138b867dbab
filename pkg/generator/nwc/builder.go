// Package nwc builds and parses Nostr Wallet Connect connection URIs:
//
//	nostr+walletconnect://<wallet pubkey hex>?relay=<relay>&secret=<client secret hex>
//
// Every URI gets its own wallet service key, generated on the spot and wiped once the
// URI is assembled.
package nwc

import (
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Amr-9/nwcgen/internal/logging"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

// Scheme is the URI scheme for wallet connect strings.
const Scheme = "nostr+walletconnect"

// Query parameter names.
const (
	ParamRelay  = "relay"
	ParamSecret = "secret"
)

// KeySource produces key pairs. *nostr.KeyGenerator satisfies it.
type KeySource interface {
	Generate() (*nostr.KeyPair, error)
}

// Builder assembles connection URIs. It holds no per-call state and is safe for
// concurrent use when Keys is.
type Builder struct {
	Keys KeySource          // Source of single-use wallet service keys (nil = crypto/rand)
	Log  logrus.FieldLogger // Debug output; never receives secrets (nil = logging.Log)
}

// NewBuilder creates a Builder drawing service keys from keys.
func NewBuilder(keys KeySource, log logrus.FieldLogger) *Builder {
	return &Builder{Keys: keys, Log: log}
}

var defaultBuilder = &Builder{}

// BuildURI builds a connection URI with the default builder.
func BuildURI(clientSecret []byte, relay string) (string, error) {
	return defaultBuilder.Build(clientSecret, relay)
}

// Build returns a fresh connection URI granting the wallet service use of clientSecret
// over relay. The relay is embedded as given; its format is the caller's concern.
func (b *Builder) Build(clientSecret []byte, relay string) (string, error) {
	if len(clientSecret) == 0 {
		return "", ErrMissingClientKey
	}
	if len(clientSecret) != nostr.KeySize {
		return "", errors.Wrapf(nostr.ErrInvalidKeyLength, "client secret is %d bytes, want %d", len(clientSecret), nostr.KeySize)
	}
	if strings.TrimSpace(relay) == "" {
		return "", ErrMissingRelay
	}

	keys := b.Keys
	if keys == nil {
		keys = &nostr.KeyGenerator{}
	}

	// One service key per URI, never reused
	service, err := keys.Generate()
	if err != nil {
		return "", errors.Wrap(err, "generate wallet service key")
	}
	defer service.Zero()

	walletPub := service.PublicHex()

	var sb strings.Builder
	sb.Grow(len(Scheme) + 3 + 2*nostr.KeySize + len(relay)*3 + 2*nostr.KeySize + 16)
	sb.WriteString(Scheme)
	sb.WriteString("://")
	sb.WriteString(walletPub)
	sb.WriteString("?" + ParamRelay + "=")
	sb.WriteString(url.QueryEscape(relay))
	sb.WriteString("&" + ParamSecret + "=")
	sb.WriteString(hex.EncodeToString(clientSecret))

	b.logger().WithFields(logrus.Fields{
		"wallet_pubkey": walletPub,
		"relay":         relay,
	}).Debug("built wallet connect uri")

	return sb.String(), nil
}

func (b *Builder) logger() logrus.FieldLogger {
	if b.Log != nil {
		return b.Log
	}
	return logging.Log
}
