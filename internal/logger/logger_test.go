package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLogger_CapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info %s", "message")
	l.Warn("warning")
	l.Error("error: %v", "boom")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug 1"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info message"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warning"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error: boom"}, l.Messages[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()
	l.Info("hello")

	assert.True(t, l.HasLevel("info"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("hello")
	l.Clear()

	assert.Empty(t, l.Messages)
}

func TestNoop_DiscardsEverything(t *testing.T) {
	l := Noop()

	// Should not panic or produce output
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}

func TestEnvLogger_DebugGatedOnEnv(t *testing.T) {
	t.Setenv("KEYUP_DEBUG", "")

	// With KEYUP_DEBUG unset, Debug is a no-op; we can't easily capture
	// log output without redirecting the global logger, so just verify
	// the call doesn't panic in both states.
	l := NewEnvLogger("[test]")
	l.Debug("hidden")

	t.Setenv("KEYUP_DEBUG", "1")
	l.Debug("visible")
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("routed")

	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "routed", buf.Messages[0].Message)
}
