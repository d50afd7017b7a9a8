package app

import (
	"fmt"
	"log/slog"

	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/config"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/service"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/storage"
)

type App struct {
	Cfg        *config.Config
	Store      storage.Store
	Bot        *tgbotapi.BotAPI
	Tracker    *service.Tracker
	Dispatcher *service.Dispatcher
}

func New(cfg *config.Config) (*App, error) {
	// Store connection is eager: a misconfigured backend should fail the
	// process at startup, not on the first command
	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}
	slog.Info("telegram bot authorized", "username", bot.Self.UserName)

	tracker := service.NewTracker(store, cfg)
	dispatcher := service.NewDispatcher(tracker, cfg.TelegramUserID)

	return &App{
		Cfg:        cfg,
		Store:      store,
		Bot:        bot,
		Tracker:    tracker,
		Dispatcher: dispatcher,
	}, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
