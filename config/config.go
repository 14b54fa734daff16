package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 32
	defaultLogLevel  = "info"
)

type Config struct {
	TelegramToken   string
	DepartmentsFile string
	SeedDB          string
	Workers         int
	QueueSize       int
	LogLevel        string
}

// LoadConfig reads the environment, after merging a .env file from the
// working directory when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		DepartmentsFile: os.Getenv("DEPARTMENTS_FILE"),
		SeedDB:          os.Getenv("SEED_DB"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	var err error
	if cfg.Workers, err = positiveInt("WORKERS", defaultWorkers); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = positiveInt("QUEUE_SIZE", defaultQueueSize); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BotToken returns the Telegram token, which only the bot needs.
func (c *Config) BotToken() (string, error) {
	if c.TelegramToken == "" {
		return "", ErrNoToken{}
	}
	return c.TelegramToken, nil
}

func positiveInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}
