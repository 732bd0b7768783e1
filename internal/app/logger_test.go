package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level   string
		format  string
		enabled slog.Level
		want    string
	}{
		{level: "debug", format: "text", enabled: slog.LevelDebug, want: "level=DEBUG"},
		{level: "warn", format: "json", enabled: slog.LevelWarn, want: `"level":"WARN"`},
		{level: "bogus", format: "bogus", enabled: slog.LevelInfo, want: "level=INFO"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(tc.level, tc.format, &buf)

			assert.True(t, logger.Enabled(context.Background(), tc.enabled))
			assert.False(t, logger.Enabled(context.Background(), tc.enabled-1))

			logger.Log(context.Background(), tc.enabled, "hello")
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "flowgraph")
		})
	}
}
