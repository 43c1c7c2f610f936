package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"backoffice/config"

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
		{in: " error ", want: slog.LevelError},
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

func TestNewLogger_JSONCarriesServiceAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "backoffice"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("key", "value"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "backoffice", record["service"])
	assert.Equal(t, "develop", record["env"])
	assert.Equal(t, "value", record["key"])
}
