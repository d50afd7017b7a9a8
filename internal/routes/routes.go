package routes

import (
	"net/http"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/app"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/handler"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	webhook := handler.NewWebhookHandler(app.Dispatcher, app.Bot)
	health := handler.NewHealthHandler()

	webhookSecret := middleware.WebhookSecret(app.Cfg.TelegramWebhookSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("POST /webhook", webhookSecret(webhook.Receive))

	return middleware.Chain(mux,
		middleware.RequestLogging,
	)
}
