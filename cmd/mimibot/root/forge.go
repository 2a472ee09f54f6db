package root

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/gemini"
)

func newForgeCmd() *cobra.Command {
	var (
		outPath     string
		aspectRatio string
		imageSize   string
		animate     bool
	)

	cmd := &cobra.Command{
		Use:   "forge <prompt>",
		Short: "Generate RPG artwork from a prompt",
		Long:  "forge renders fantasy artwork for the given prompt. With --animate the image is also turned into a short video clip.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("prompt is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cfg.GeminiAPIKey == "" {
				return errors.New("GEMINI_API_KEY is required")
			}

			prompt := strings.Join(args, " ")
			client := gemini.NewClient(cfg.GeminiAPIKey)

			img, err := client.GenerateImage(prompt, aspectRatio, imageSize)
			if err != nil {
				return fmt.Errorf("generate image: %w", err)
			}

			if !animate {
				if err := os.WriteFile(outPath, img, 0o644); err != nil {
					return fmt.Errorf("write image: %w", err)
				}
				fmt.Printf("Image written to %s\n", outPath)
				return nil
			}

			video, err := client.AnimateImage(prompt, img, aspectRatio)
			if err != nil {
				return fmt.Errorf("animate image: %w", err)
			}
			if err := os.WriteFile(outPath, video, 0o644); err != nil {
				return fmt.Errorf("write video: %w", err)
			}
			fmt.Printf("Video written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "forge.png", "output file path")
	cmd.Flags().StringVar(&aspectRatio, "aspect", "1:1", "aspect ratio")
	cmd.Flags().StringVar(&imageSize, "size", "1K", "image size")
	cmd.Flags().BoolVar(&animate, "animate", false, "animate the generated image into a video")
	return cmd
}
