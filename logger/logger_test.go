package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"loud", zapcore.WarnLevel},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, parseLevel(c.level), "level %q", c.level)
	}
}

func TestNewLogger(t *testing.T) {
	logg := NewLogger("error")
	assert.NotNil(t, logg)
	assert.False(t, logg.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logg.Desugar().Core().Enabled(zapcore.ErrorLevel))
}
