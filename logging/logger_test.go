package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LogSample(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithRun("r1")

	l.LogSampleStart(context.Background(), 100, 10, 5)
	l.LogSample(context.Background(), 5, false, time.Millisecond, nil)
	l.LogSample(context.Background(), 1, false, 0, errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "sampling started", rec["msg"])
	assert.Equal(t, "r1", rec["run"])
	assert.EqualValues(t, 10, rec["candidates"])

	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "sampling completed", rec["msg"])
	assert.EqualValues(t, 5, rec["accepted"])

	rec = nil
	require.NoError(t, json.Unmarshal(lines[2], &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
