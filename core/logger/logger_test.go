package logger_test

import (
	"testing"

	"modlist-builder/core/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logger.Config
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", logger.Config{Level: "warn", Format: "console"}, zapcore.WarnLevel, false},
		{"DefaultLevel", logger.Config{Format: "json"}, zapcore.InfoLevel, false},
		{"InvalidLevel", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			assert.False(t, l.Core().Enabled(tt.wantLevel-1))
		})
	}
}
