package main

import (
	"log"
	"log/slog"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("PANIC in main", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	setupLogger()
	defer closeLogger()

	cfg := loadConfig()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("❌ Bot startup failed: %v", err)
	}
	slog.Info("Bot started", "username", api.Self.UserName)

	app := InitApp(cfg, api, newTelegramDownloader(api, cfg))
	if err := app.Menus.Validate(app.Registry); err != nil {
		log.Fatalf("❌ Menu tree invalid: %v", err)
	}
	slog.Info("App initialized",
		"commands", app.Registry.Len(),
		"gate", cfg.Channel.Require)

	app.StartJanitors()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for update := range updates {
		Dispatch(app, api, update)
	}
}
