package root

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the game state document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			directory, closeStore, err := openDirectory(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			data, err := json.MarshalIndent(directory.State(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}

			if outPath == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Printf("State exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the backup to a file instead of stdout")
	return cmd
}
