package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotID    uint64
	LogLevel string

	WebhookAddr   string
	WebhookSecret string

	// raw secret kept in-memory only; never log this
	Token string

	// optional one-shot stats publish on startup
	ServerCount *int
}

func Load() (Config, error) {
	// a .env next to the binary is a convenience for local runs; absence is fine
	_ = godotenv.Load()

	cfg := Config{
		Token:         os.Getenv("DIRECTORY_TOKEN"),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		WebhookAddr:   getenvDefault("WEBHOOK_ADDR", ":8080"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
	}

	if strings.TrimSpace(cfg.Token) == "" {
		return Config{}, errors.New("missing DIRECTORY_TOKEN")
	}
	if strings.TrimSpace(cfg.WebhookSecret) == "" {
		return Config{}, errors.New("missing WEBHOOK_SECRET")
	}

	rawID := os.Getenv("DIRECTORY_BOT_ID")
	if rawID == "" {
		return Config{}, errors.New("missing DIRECTORY_BOT_ID")
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return Config{}, errors.New("DIRECTORY_BOT_ID must be a numeric bot id")
	}
	cfg.BotID = id

	if raw := os.Getenv("SERVER_COUNT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, errors.New("SERVER_COUNT must be a non-negative integer")
		}
		cfg.ServerCount = &n
	}

	return cfg, nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
