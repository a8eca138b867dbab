package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	require.NoError(t, Setup("debug"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	require.NoError(t, Setup(""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	err := Setup("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestDebug(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	Debug(true)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	Debug(false)
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}
