package server_test

import (
	"testing"
	"time"

	"modlist-builder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		cfg         server.Config
		wantTimeout time.Duration
		wantLimit   int
	}{
		{"Zero", server.Config{}, 15 * time.Second, 4 << 20},
		{"Negative", server.Config{ReadTimeoutSeconds: -1, BodyLimitBytes: -5}, 15 * time.Second, 4 << 20},
		{"Explicit", server.Config{ReadTimeoutSeconds: 3, BodyLimitBytes: 1024}, 3 * time.Second, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTimeout, tt.cfg.ReadTimeout())
			assert.Equal(t, tt.wantLimit, tt.cfg.BodyLimit())
		})
	}
}
