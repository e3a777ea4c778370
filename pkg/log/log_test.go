package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncluiCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("APP_ENV", "production")
	Configure("debug", &buf)
	defer logrus.SetOutput(os.Stderr)

	ctx, _ := WithCorrelationID(context.Background(), "req-1")
	ForContext(ctx).WithField("collection", "clients").Info("teste")

	assert.Contains(t, buf.String(), `"correlation_id":"req-1"`)
	assert.Contains(t, buf.String(), `"collection":"clients"`)
}

func TestConfigure_NivelInvalido(t *testing.T) {
	var buf bytes.Buffer
	Configure("barulhento", &buf)
	defer logrus.SetOutput(os.Stderr)

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
