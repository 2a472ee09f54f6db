package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/gemini"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the lore keeper about the MiMi Kingdom",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("question is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cfg.GeminiAPIKey == "" {
				return errors.New("GEMINI_API_KEY is required")
			}

			answer, err := gemini.NewClient(cfg.GeminiAPIKey).Chat(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("lore chat: %w", err)
			}

			fmt.Println(answer)
			return nil
		},
	}
}
