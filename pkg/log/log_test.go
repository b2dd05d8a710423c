package log

import (
	"context"
	"errors"
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

func TestForContext_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := test.NewGlobal()
	SetupTestLogger()

	ctx, id := WithCorrelationID(context.Background())

	ForContext(ctx).WithFields(Fields{
		"method":        "GET",
		"meta_attempts": 2,
		"remote_addr":   "127.0.0.1",
	}).Info("requisição")

	entry := hook.LastEntry()
	require.NotNil(t, entry)

	assert.Equal(t, id, entry.Data[correlationIDField])
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, 2, entry.Data["meta_attempts"])
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestForContext_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	SetupTestLogger()

	L.WithField("remote_addr", "127.0.0.1").WithError(errors.New("boom")).Error("falhou")

	entry := hook.LastEntry()
	require.NotNil(t, entry)

	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "127.0.0.1", entry.Data["remote_addr"])
	assert.Contains(t, entry.Data, logrus.ErrorKey)
}

func TestConfigure(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	defer SetupTestLogger()

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	Configure("nope")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
