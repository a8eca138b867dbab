package cpu

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/nwcgen/pkg/generator"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

type brokenRand struct{}

func (brokenRand) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool closed")
}

func TestCPUGeneratorFindsMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g := NewCPUGenerator(2)
	assert.Equal(t, "CPU", g.Name())

	results, err := g.Start(ctx, &generator.Config{Suffix: "q"})
	require.NoError(t, err)

	select {
	case res := <-results:
		require.NotNil(t, res.Keys)
		assert.True(t, strings.HasSuffix(res.Npub, "q"), res.Npub)
		assert.Equal(t, res.Keys.Npub(), res.Npub)
		assert.GreaterOrEqual(t, g.Stats().Attempts, uint64(1))
	case <-ctx.Done():
		t.Fatal("no match before timeout")
	}
}

func TestCPUGeneratorPrefix(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := NewCPUGenerator(0).Start(ctx, &generator.Config{Prefix: "npub1s"})
	require.NoError(t, err)

	select {
	case res := <-results:
		assert.True(t, strings.HasPrefix(res.Npub, "npub1s"), res.Npub)
	case <-ctx.Done():
		t.Fatal("no match before timeout")
	}
}

func TestCPUGeneratorCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	g := NewCPUGenerator(2)
	results, err := g.Start(ctx, &generator.Config{Prefix: "qqqqqqqqqq"})
	require.NoError(t, err)
	cancel()

	select {
	case res, ok := <-results:
		require.False(t, ok, "unexpected result %s", res.Npub)
	case <-time.After(2 * time.Second):
		t.Fatal("result channel not closed after cancel")
	}
	assert.NoError(t, g.Err())

	stats := g.Stats()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stats.Attempts, g.Stats().Attempts, "workers kept running after cancel")
}

func TestCPUGeneratorInvalidPattern(t *testing.T) {
	_, err := NewCPUGenerator(1).Start(context.Background(), &generator.Config{Prefix: "bob"})
	assert.ErrorIs(t, err, generator.ErrInvalidPattern)
}

func TestStatsBeforeStart(t *testing.T) {
	s := NewCPUGenerator(1).Stats()
	assert.Equal(t, uint64(0), s.Attempts)
	assert.Equal(t, 0.0, s.HashRate)
}

func TestCPUGeneratorRandomSourceFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g := NewCPUGenerator(2)
	g.keys = nostr.NewKeyGenerator(brokenRand{})

	results, err := g.Start(ctx, &generator.Config{Prefix: "q"})
	require.NoError(t, err)

	select {
	case res, ok := <-results:
		require.False(t, ok, "unexpected result %s", res.Npub)
	case <-ctx.Done():
		t.Fatal("result channel not closed after workers failed")
	}
	assert.ErrorIs(t, g.Err(), nostr.ErrRandomSourceUnavailable)
	assert.Equal(t, uint64(0), g.Stats().Attempts)
}

func TestCPUGeneratorClosesAfterMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g := NewCPUGenerator(4)
	results, err := g.Start(ctx, &generator.Config{Suffix: "q"})
	require.NoError(t, err)

	res, ok := <-results
	require.True(t, ok)
	require.NotNil(t, res.Keys)

	select {
	case _, ok := <-results:
		assert.False(t, ok)
	case <-ctx.Done():
		t.Fatal("result channel not closed after match")
	}
	assert.NoError(t, g.Err())
}
