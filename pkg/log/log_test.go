package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_WithContext(t *testing.T) {
	base, hook := test.NewNullLogger()
	ctx, id := WithCorrelationID(context.Background())

	New(base).WithContext(ctx).WithField("operation", "Reload").Info("ok")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, id, entry.Data["correlation_id"])
	assert.Equal(t, "Reload", entry.Data["operation"])
}

func TestLogger_WithContextSemID(t *testing.T) {
	base, hook := test.NewNullLogger()

	New(base).WithContext(context.Background()).Warn("sem id")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	_, ok := entry.Data["correlation_id"]
	assert.False(t, ok)
}
