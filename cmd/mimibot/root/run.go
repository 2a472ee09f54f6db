package root

import (
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/delivery/bot"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/gemini"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/telegram"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bot polling loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cfg.BotToken == "" {
				return errors.New("BOT_TOKEN is required")
			}

			directory, closeStore, err := openDirectory(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			transport := telegram.NewClient(cfg.BotToken, cfg.PollTimeout, cfg.SendRateLimit, cfg.SendBurst)
			generator := gemini.NewClient(cfg.GeminiAPIKey)
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			dispatcher := bot.NewDispatcher(transport, generator, directory, rng, cfg.PollInterval, cfg.PollTimeout)
			dispatcher.Start()

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			dispatcher.Stop()
			logger.Log.Info("Bot exited gracefully")
			return nil
		},
	}
}
