package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, b)
}

func TestZeroEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Zero(nil) })
	assert.NotPanics(t, func() { Zero([]byte{}) })
}
