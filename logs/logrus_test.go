package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogrusWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.DebugLevel,
		Output: &buf,
		JSON:   true,
	})

	ctx := WithTraceID(context.Background(), 42)
	logger.Info(ctx, "inserted", MapFields{"key": 7, "variant": "avl"})

	var entry map[string]interface{}
	assert.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inserted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["key"])
	assert.Equal(t, "avl", entry["variant"])
	assert.Equal(t, float64(42), entry["trace_id"])
}

func TestLogrusRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.WarnLevel,
		Output: &buf,
	})

	logger.Debug(context.Background(), "hidden", nil)
	logger.Info(context.Background(), "hidden", MapFields{})
	assert.Equal(t, 0, buf.Len())

	logger.Warn(context.Background(), "shown", MapFields{})
	assert.Contains(t, buf.String(), "shown")
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Equal(t, int64(0), GetTraceID(context.Background()))
	assert.Equal(t, int64(9), GetTraceID(WithTraceID(context.Background(), 9)))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.Nil(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.NotNil(t, err)
}
