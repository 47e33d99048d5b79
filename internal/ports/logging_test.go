package ports

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestStructuredLogger_BaseAttrs(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(newBufferLogger(&buf), "session", "v1")

	sl.Info("rendered", "nodes", 4, "ok", true)

	out := buf.String()
	assert.Contains(t, out, "component=session")
	assert.Contains(t, out, "version=v1")
	assert.Contains(t, out, "nodes=4")
	assert.Contains(t, out, "ok=true")
}

func TestStructuredLogger_SkipsNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(newBufferLogger(&buf), "session", "v1")

	sl.Warn("odd args", 42, "value", "dangling")

	assert.NotContains(t, buf.String(), "time=")
	assert.NotContains(t, buf.String(), "42")
	assert.NotContains(t, buf.String(), "dangling")
}

func TestStructuredLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(newBufferLogger(&buf), "session", "v1")

	sl.Debug("d")
	sl.Info("i")
	sl.Warn("w")
	sl.Error("e", FieldStep, "charge")

	out := buf.String()
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		assert.Contains(t, out, "level="+level)
	}
	assert.Contains(t, out, "step=charge")
}

func TestOperationLogger_CompleteAndFail(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(newBufferLogger(&buf), "session", "v1")

	op := sl.WithOperation("render", "abc")
	op.Complete("render finished", FieldNodes, 3)
	assert.Contains(t, buf.String(), "operation=render")
	assert.Contains(t, buf.String(), "session_id=abc")
	assert.Contains(t, buf.String(), "status=completed")

	buf.Reset()
	op.Fail("render failed", errors.New("store closed"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=failed")
	assert.Contains(t, buf.String(), `error="store closed"`)
}
