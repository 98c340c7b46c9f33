package main

import (
	"os"

	"github.com/joho/godotenv"

	"brandwatch/internal/app"
	"brandwatch/internal/config"
	"brandwatch/internal/infrastructure/web"
	"brandwatch/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	application := app.New(cfg, logger)

	server := web.New(
		application.Pipeline(),
		cfg.Query,
		cfg.Server.AllowedOrigins,
		logging.Component(logger, "web"),
	)

	logger.Info("dashboard listening", "addr", cfg.Server.Addr)
	if err := server.Run(cfg.Server.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
