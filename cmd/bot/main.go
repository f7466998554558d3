package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pinghoyk/kaloribot/internal/bot"
	"github.com/pinghoyk/kaloribot/internal/config"
	"github.com/pinghoyk/kaloribot/internal/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("ошибка инициализации базы данных", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	b, err := bot.New(cfg.TelegramBotToken, db)
	if err != nil {
		slog.Error("ошибка создания бота", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("бот запущен")
	if err := b.Start(ctx); err != nil {
		slog.Error("бот остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
	slog.Info("бот остановлен")
}
