package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseIsIdempotent(t *testing.T) {
	log, err := NewLogger(WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	log.Close()

	// Shutdown reaches Close from both the signal path and main's defers;
	// the repeat call must be a no-op, not a closed-channel panic.
	assert.NotPanics(t, log.Close)
}

func TestCloseAfterLogging(t *testing.T) {
	log, err := NewLogger(WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	log.Info(context.Background()).WithMeta(map[string]string{"k": "v"}).Logs("shutting down")

	assert.NotPanics(t, func() {
		log.Close()
		log.Close()
	})
}
