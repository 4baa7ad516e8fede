package trace

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestTimerLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Debug,
	})

	Start("test-op", logger).Since()

	out := buf.String()
	require.Contains(t, out, "trace")
	require.Contains(t, out, "test-op")
	require.Contains(t, out, "elapsed")
}

func TestTimerNilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		Start("no-logger", nil).Since()
	})
}
