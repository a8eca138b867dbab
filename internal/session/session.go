// Package session holds the state of one interactive console session: the client key pair,
// whether secrets are shown, and the last connection URI built for that pair.
package session

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/Amr-9/nwcgen/internal/memzero"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

// ErrNoClientKeys is returned when a URI is requested before keys exist.
var ErrNoClientKeys = errors.Wrap(nwc.ErrMissingClientKey, "generate client keys first")

// Session owns the client key pair for its lifetime.
type Session struct {
	mu      sync.Mutex
	keys    nwc.KeySource
	builder *nwc.Builder
	client  *nostr.KeyPair
	uri     string
	reveal  bool
}

// New creates a session. keys supplies client keys and builder supplies URIs;
// nil values use crypto/rand backed defaults.
func New(keys nwc.KeySource, builder *nwc.Builder) *Session {
	if keys == nil {
		keys = &nostr.KeyGenerator{}
	}
	if builder == nil {
		builder = &nwc.Builder{}
	}
	return &Session{keys: keys, builder: builder}
}

// Generate replaces the client key pair with a fresh one.
// The previous pair is wiped and any URI built from it is dropped.
func (s *Session) Generate() (*nostr.KeyPair, error) {
	kp, err := s.keys.Generate()
	if err != nil {
		return nil, err
	}
	s.Use(kp)
	return kp, nil
}

// Use makes kp the client key pair, e.g. one found by a vanity search.
// The session takes ownership of kp.
func (s *Session) Use(kp *nostr.KeyPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil && s.client != kp {
		s.client.Zero()
	}
	s.client = kp
	s.uri = ""
}

// Client returns the current client key pair, or nil before Generate.
func (s *Session) Client() *nostr.KeyPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// ToggleReveal flips secret visibility and returns the new state.
func (s *Session) ToggleReveal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reveal = !s.reveal
	return s.reveal
}

// SetReveal sets secret visibility.
func (s *Session) SetReveal(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reveal = v
}

// Revealed reports whether secrets should be shown unmasked.
func (s *Session) Revealed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reveal
}

// BuildURI builds a connection URI for the current client key and remembers it.
func (s *Session) BuildURI(relay string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return "", ErrNoClientKeys
	}

	sk := s.client.SecretKey()
	defer memzero.Zero(sk[:])

	uri, err := s.builder.Build(sk[:], relay)
	if err != nil {
		return "", err
	}
	s.uri = uri
	return uri, nil
}

// URI returns the last URI built for the current key pair, or "".
func (s *Session) URI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uri
}

// Close wipes the client key pair.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Zero()
		s.client = nil
	}
	s.uri = ""
}
