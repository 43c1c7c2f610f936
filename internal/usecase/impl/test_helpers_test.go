package impl

import (
	"io"
	"log/slog"

	"backoffice/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}
