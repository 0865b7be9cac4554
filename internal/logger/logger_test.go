package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}

func TestNewBuildsLoggerAtLevel(t *testing.T) {
	log, err := New("warn", false)
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestFromContext(t *testing.T) {
	nop := zap.NewNop()
	ctx := WithContext(context.Background(), nop)

	assert.Same(t, nop, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromContextOr(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewNop()

	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Same(t, scoped, FromContextOr(WithContext(context.Background(), scoped), fallback))
	assert.NotNil(t, FromContextOr(context.Background(), nil))
}
