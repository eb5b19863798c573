package impl

import (
	"io"
	"log/slog"

	"tresor/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(verifyPasswordOnLogin bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:            10,
			VerifyPasswordOnLogin: verifyPasswordOnLogin,
		},
	}
}
