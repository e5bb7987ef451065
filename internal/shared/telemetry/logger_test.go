package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLogLineShape(t *testing.T) {
	require.True(t, SetLevel("info"))

	logs := capture(t, func() {
		Info("scan.complete", map[string]any{"score": 55.25, "error": errors.New("boom")})
	})
	require.Len(t, logs, 1)
	line := logs[0]
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "scan.complete", line["msg"])
	assert.Equal(t, 55.25, line["score"])
	assert.Equal(t, "boom", line["error"])
	assert.NotEmpty(t, line["ts"])
}

func TestSetLevelFilters(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })
	require.True(t, SetLevel("WARN"))
	assert.False(t, SetLevel("loud"))

	logs := capture(t, func() {
		Debug("hidden", nil)
		Info("hidden", nil)
		Warn("shown", nil)
		Error("shown", nil)
	})
	require.Len(t, logs, 2)
	assert.Equal(t, "warn", logs[0]["level"])
	assert.Equal(t, "error", logs[1]["level"])
}
