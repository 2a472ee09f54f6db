package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/config"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/storage"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/usecase"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mimibot",
	Short:         "MiMi Games RPG Telegram bot",
	Long:          "mimibot runs the MiMi Kingdom RPG over the Telegram Bot API: hunting, daily rewards, a shop economy and AI-forged artwork.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRunCmd(),
		newAskCmd(),
		newForgeCmd(),
		newExportCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration and applies the logging level it carries.
func loadConfig() *config.Config {
	cfg := config.LoadFromEnv()
	logger.SetLevel(cfg.LogLevel)
	return cfg
}

// openStore picks the configured backing store: sqlite when DB_PATH is set,
// in-memory otherwise.
func openStore(cfg *config.Config) (storage.Store, func(), error) {
	if cfg.DBPath == "" {
		return storage.NewMemoryStore(), func() {}, nil
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func openDirectory(cfg *config.Config) (*usecase.Directory, func(), error) {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	dir, err := usecase.NewDirectory(store)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return dir, closeStore, nil
}
