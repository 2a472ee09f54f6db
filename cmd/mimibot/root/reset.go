package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the game state document to catalog defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("this wipes all player progress; re-run with --force")
			}

			cfg := loadConfig()

			directory, closeStore, err := openDirectory(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := directory.Reset(); err != nil {
				return err
			}
			fmt.Println("Database has been reset to default values.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the reset")
	return cmd
}
