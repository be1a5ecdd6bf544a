package debug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTogglesEnabled(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	Init(false)
	require.False(t, Enabled())

	Init(true)
	require.True(t, Enabled())

	Init(false)
	require.False(t, Enabled())
}

func TestLoggerNeverNil(t *testing.T) {
	require.NotNil(t, Logger())
	require.NotNil(t, With("component", "test"))

	// Safe to call while disabled; output is discarded.
	Debug("debug", "k", "v")
	Info("info")
	Warn("warn")
	Error("error")
}
