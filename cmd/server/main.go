package main

import (
	"log/slog"
	"net/http"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/app"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/config"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/logger"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "store", cfg.StoreDriver)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
