package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

func TestSessionLifecycle(t *testing.T) {
	s := New(nil, nil)
	assert.Nil(t, s.Client())
	assert.Equal(t, "", s.URI())

	_, err := s.BuildURI("wss://relay.example.com")
	assert.ErrorIs(t, err, ErrNoClientKeys)
	assert.ErrorIs(t, err, nwc.ErrMissingClientKey)

	first, err := s.Generate()
	require.NoError(t, err)
	assert.Same(t, first, s.Client())

	uri, err := s.BuildURI("wss://relay.example.com")
	require.NoError(t, err)
	assert.Equal(t, uri, s.URI())

	conn, err := nwc.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, first.SecretHex(), conn.Secret)

	firstSecret := first.SecretHex()
	second, err := s.Generate()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.NotEqual(t, firstSecret, second.SecretHex())
	assert.Equal(t, "", s.URI(), "regenerating keys drops the old uri")
	assert.Equal(t, [nostr.KeySize]byte{}, first.SecretKey(), "old pair is wiped")

	s.Close()
	assert.Nil(t, s.Client())
	assert.Equal(t, [nostr.KeySize]byte{}, second.SecretKey())
}

func TestSessionBuildURIErrorsKeepState(t *testing.T) {
	s := New(nil, nil)
	_, err := s.Generate()
	require.NoError(t, err)

	uri, err := s.BuildURI("wss://relay.example.com")
	require.NoError(t, err)

	_, err = s.BuildURI("   ")
	assert.ErrorIs(t, err, nwc.ErrMissingRelay)
	assert.Equal(t, uri, s.URI())
}

func TestSessionReveal(t *testing.T) {
	s := New(nil, nil)
	assert.False(t, s.Revealed())
	assert.True(t, s.ToggleReveal())
	assert.True(t, s.Revealed())
	assert.False(t, s.ToggleReveal())

	s.SetReveal(true)
	assert.True(t, s.Revealed())
}

func TestSessionGenerateError(t *testing.T) {
	s := New(nostr.NewKeyGenerator(bytes.NewReader([]byte{0})), nil)
	_, err := s.Generate()
	assert.ErrorIs(t, err, nostr.ErrRandomSourceUnavailable)
	assert.Nil(t, s.Client())
}

func TestSessionUse(t *testing.T) {
	s := New(nil, nil)
	old, err := s.Generate()
	require.NoError(t, err)
	_, err = s.BuildURI("wss://relay.example.com")
	require.NoError(t, err)

	kp, err := nostr.GenerateKeyPair()
	require.NoError(t, err)
	s.Use(kp)

	assert.Same(t, kp, s.Client())
	assert.Equal(t, "", s.URI())
	assert.Equal(t, [nostr.KeySize]byte{}, old.SecretKey())

	// Using the same pair again must not wipe it
	s.Use(kp)
	assert.NotEqual(t, [nostr.KeySize]byte{}, kp.SecretKey())
}
