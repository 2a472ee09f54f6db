package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all application configuration
type Config struct {
	// Telegram
	BotToken     string
	PollInterval time.Duration
	PollTimeout  time.Duration

	// Outbound send throttle (messages per second to the Bot API)
	SendRateLimit rate.Limit
	SendBurst     int

	// Gemini
	GeminiAPIKey string

	// Persistence; empty path keeps the state document in memory only
	DBPath string

	// Logging
	LogLevel string
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		PollInterval:  1 * time.Second,
		PollTimeout:   30 * time.Second,
		SendRateLimit: 25,
		SendBurst:     5,
		LogLevel:      "info",
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	if token := os.Getenv("BOT_TOKEN"); token != "" {
		cfg.BotToken = token
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}

	if iv := os.Getenv("POLL_INTERVAL_SECONDS"); iv != "" {
		if val, err := strconv.Atoi(iv); err == nil && val > 0 {
			cfg.PollInterval = time.Duration(val) * time.Second
		}
	}

	if to := os.Getenv("POLL_TIMEOUT_SECONDS"); to != "" {
		if val, err := strconv.Atoi(to); err == nil && val >= 0 {
			cfg.PollTimeout = time.Duration(val) * time.Second
		}
	}

	if rl := os.Getenv("SEND_RATE_LIMIT"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.SendRateLimit = rate.Limit(val)
		}
	}

	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}
