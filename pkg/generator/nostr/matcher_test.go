package nostr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNpubMatcher(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		npub   string
		want   bool
	}{
		{"prefix", "0elf", "", vectorNpub, true},
		{"prefix with head", "npub10elf", "", vectorNpub, true},
		{"prefix uppercase", "0ELF", "", vectorNpub, true},
		{"suffix", "", "vjptg", vectorNpub, true},
		{"both", "0e", "ptg", vectorNpub, true},
		{"wrong prefix", "qqq", "", vectorNpub, false},
		{"wrong suffix", "", "qqq", vectorNpub, false},
		{"empty pattern", "", "", vectorNpub, true},
		{"not an npub", "0elf", "", vectorNsec, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewNpubMatcher(tt.prefix, tt.suffix)
			assert.Equal(t, tt.want, m.Matches(tt.npub))
		})
	}
}

func TestIsValidPattern(t *testing.T) {
	assert.True(t, IsValidPattern(""))
	assert.True(t, IsValidPattern("sats"))
	assert.True(t, IsValidPattern("SATS"))
	assert.True(t, IsValidPattern("npub1dev"))
	assert.False(t, IsValidPattern("bob"))
	assert.False(t, IsValidPattern("nostr"))

	assert.Equal(t, []rune{'b', 'o', 'b'}, InvalidChars("bob"))
	assert.Equal(t, []rune{'1', 'i'}, InvalidChars("x1i"))
	assert.Empty(t, InvalidChars("npub1qp"))
}

func TestNpubPadCharacter(t *testing.T) {
	for i := 0; i < 200; i++ {
		kp, err := GenerateKeyPair()
		require.NoError(t, err)
		npub := kp.Npub()
		require.Len(t, npub, len(npubHead)+NpubBodyLen)
		assert.Contains(t, "qs", string(npub[len(npub)-7]), npub)
		kp.Zero()
	}
}

func TestCheckPlacement(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		ok     bool
	}{
		{"short suffix", "", "aaaaaa", true},
		{"pad q", "", "qaaaaaa", true},
		{"pad s", "", "saaaaaa", true},
		{"pad other", "", "aaaaaaa", false},
		{"long suffix pad other", "", "pqaaaaaaa", false},
		{"prefix reaching pad", strings.Repeat("q", 51) + "a", "", false},
		{"prefix with pad s", strings.Repeat("q", 51) + "s", "", true},
		{"suffix too long", "", strings.Repeat("q", NpubBodyLen+1), false},
		{"prefix too long", strings.Repeat("q", NpubBodyLen+1), "", false},
		{"overlap agrees", strings.Repeat("q", 55), "qqqqqq", true},
		{"overlap disagrees", strings.Repeat("q", 55), "pppppp", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPlacement(tt.prefix, tt.suffix)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPatternBits(t *testing.T) {
	assert.Equal(t, 0, PatternBits("", ""))
	assert.Equal(t, 10, PatternBits("sa", ""))
	assert.Equal(t, 30, PatternBits("", "aaaaaa"))
	assert.Equal(t, 31, PatternBits("", "saaaaaa"))
	assert.Equal(t, 36, PatternBits("", "asaaaaaa"))
	assert.Equal(t, 57*5+1, PatternBits(strings.Repeat("q", 55), "qqqqqq"))
	assert.Equal(t, -1, PatternBits("", "aaaaaaa"))
}
