package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"oilshare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "oilshare"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("session_id", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "oilshare", line["service"])
	assert.Equal(t, "abc", line["session_id"])
}

func TestBuild_PrettyText(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("route previewed")

	assert.Contains(t, buf.String(), "msg=\"route previewed\"")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
