// Package config читает параметры запуска API из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Config - параметры запуска сервиса.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        slog.Level
	BotToken        string
	BotChatID       int64
	NotifyTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// NotificationsEnabled сообщает, заданы ли параметры Telegram-бота.
func (c Config) NotificationsEnabled() bool {
	return c.BotToken != "" && c.BotChatID != 0
}

// Load читает конфигурацию из окружения, подставляя значения по умолчанию.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            getenv("API_PORT"),
		GinMode:         getenv("GIN_MODE"),
		BotToken:        getenv("BOT_TOKEN"),
		NotifyTimeout:   5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	switch cfg.GinMode {
	case "":
		cfg.GinMode = gin.ReleaseMode
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if chatID := getenv("BOT_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BOT_CHAT_ID: %w", err)
		}
		cfg.BotChatID = id
	}
	if err := durationVar(getenv, "NOTIFY_TIMEOUT", &cfg.NotifyTimeout); err != nil {
		return Config{}, err
	}
	if err := durationVar(getenv, "SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func durationVar(getenv func(string) string, key string, dst *time.Duration) error {
	value := getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s: must be positive, got %s", key, value)
	}
	*dst = d
	return nil
}
