package main

import (
	"github.com/joho/godotenv"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/cmd/mimibot/root"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	logger.Init()
	root.Execute()
}
