package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (*bytes.Buffer, Logger) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	base.SetLevel(logrus.DebugLevel)
	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_WithContext_AddsCorrelationID(t *testing.T) {
	buf, l := newBufferedLogger()
	ctx, id := WithCorrelationID(context.Background())

	l.WithContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestLogger_DevelopmentDropsIrrelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := newBufferedLogger()

	l.WithFields(Fields{
		"campaign_id": "cmp1",
		"leads":       3,
	}).Info("campanha criada")

	assert.Contains(t, buf.String(), "campaign_id=cmp1")
	assert.NotContains(t, buf.String(), "leads=3")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := newBufferedLogger()

	l.WithField("leads", 3).Info("campanha criada")

	assert.Contains(t, buf.String(), "leads=3")
}
