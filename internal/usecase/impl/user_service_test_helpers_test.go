package impl

import (
	"io"
	"log/slog"

	"authsvc/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(variant int) *config.Config {
	return &config.Config{
		API: config.APIConfig{Variant: variant},
		JWT: config.JWTConfig{Secret: "test-secret"},
		Mail: &config.MailConfig{
			Host:            "smtp.example.com",
			Port:            587,
			Username:        "shop@example.com",
			Password:        "app-password",
			From:            "shop@example.com",
			OperatorAddress: "owner@example.com",
		},
	}
}
