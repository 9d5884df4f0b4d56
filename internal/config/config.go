package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is used when MONEYWISE_API_URL is not set.
const DefaultBaseURL = "https://api.moneywise.app"

type Config struct {
	APIBaseURL    string
	TelegramToken string
	StatePath     string
	LogLevel      string
}

// Load reads configuration from a .env file (if present) and the
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    getenv("MONEYWISE_API_URL", DefaultBaseURL),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		StatePath:     getenv("MONEYWISE_STATE_PATH", defaultStatePath()),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "moneywise.db"
	}
	return filepath.Join(home, ".moneywise", "state.db")
}
