package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken string
	DatabasePath     string
}

// Load читает конфигурацию из переменных окружения (и .env, если есть)
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("не задана переменная окружения BOT_TOKEN")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "calorie_bot.db"
	}

	return &Config{
		TelegramBotToken: token,
		DatabasePath:     dbPath,
	}, nil
}
