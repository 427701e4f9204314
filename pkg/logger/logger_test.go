package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-syncqueue/pkg/settings"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugOn   bool
		wantError bool
	}{
		{"debug", true, false},
		{"info", false, false},
		{"warn", false, false},
		{"error", false, false},
		{"verbose", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(settings.Logger{LogLevel: tt.level})
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")
	log, err := New(settings.Logger{LogLevel: "info", FileLogName: path, MaxSize: 1})
	require.NoError(t, err)

	log.Info("pop")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"pop"`)
}
