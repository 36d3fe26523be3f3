package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestBuild_SetsLevel(t *testing.T) {
	level := zap.NewAtomicLevel()
	l := build(Config{Level: "warn", Format: "json"}, level)

	assert.NotNil(t, l)
	assert.Equal(t, zapcore.WarnLevel, level.Level())
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestSecret(t *testing.T) {
	f := Secret("api_key", "sk-1234567890abcd")
	assert.Equal(t, "sk-...abcd", f.String)
}

func TestColoredEncoderKeepsPlainLines(t *testing.T) {
	enc := NewColoredConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	buf, err := enc.EncodeEntry(zapcore.Entry{Message: "hello"}, nil)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "hello")
}

func TestGlobalLevel(t *testing.T) {
	Initialize(Config{Level: "info", Format: "json"})
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("debug")
	assert.Equal(t, "debug", Level())
	assert.True(t, With(zap.String("component", "test")).Core().Enabled(zapcore.DebugLevel))

	SetLevel("error")
	assert.False(t, Get().Core().Enabled(zapcore.WarnLevel))
}
