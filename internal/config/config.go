package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Telegram
	TelegramBotToken      string
	TelegramUserID        string
	TelegramWebhookSecret string

	// Store backend: "sheets" (Google Sheets), "sqlite", "pgx" or "memory"
	StoreDriver string

	// Google Sheets (required when StoreDriver is "sheets")
	GoogleSheetID         string
	GoogleCredentialsJSON string

	// SQL grid backend (used when StoreDriver is "sqlite" or "pgx")
	DBConnection string

	// Sheet names within the store
	ActivitySheet    string
	ConsumptionSheet string
	LanguageSheet    string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "sambo-habit-tracker"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8080"),

		// Telegram
		TelegramBotToken:      envRequired("TELEGRAM_BOT_TOKEN"),
		TelegramUserID:        envRequired("TELEGRAM_USER_ID"), // the single authorized caller
		TelegramWebhookSecret: envString("TELEGRAM_WEBHOOK_SECRET", ""),

		// Store
		StoreDriver:           envString("STORE_DRIVER", "sheets"),
		GoogleSheetID:         envString("GOOGLE_SHEET_ID", ""),
		GoogleCredentialsJSON: envString("GOOGLE_CREDENTIALS_JSON", ""),
		DBConnection:          envString("DB_CONNECTION", "./data/sambo.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Sheets
		ActivitySheet:    envString("SHEET_ACTIVITY", "Activity"),
		ConsumptionSheet: envString("SHEET_CONSUMPTION", "Consumption"),
		LanguageSheet:    envString("SHEET_LANGUAGE", "Language"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	validateStore(cfg)

	return cfg
}

// validateStore ensures the selected store backend has the credentials it
// needs. Missing store configuration is a startup error, not a per-request one.
func validateStore(cfg *Config) {
	if cfg.StoreDriver != "sheets" {
		return
	}
	if cfg.GoogleSheetID == "" {
		slog.Error("store driver 'sheets' requires GOOGLE_SHEET_ID",
			"hint", "set STORE_DRIVER=memory for local testing without a spreadsheet")
		os.Exit(1)
	}
	if cfg.GoogleCredentialsJSON == "" {
		slog.Error("store driver 'sheets' requires GOOGLE_CREDENTIALS_JSON",
			"hint", "paste the service account key JSON into the variable")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
