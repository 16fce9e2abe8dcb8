package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"plinth/internal/app"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the plinth configuration file",
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default plinth.yaml to the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.DefaultDir()
			if err != nil {
				return err
			}
			path, err := app.WriteConfigFile(app.Config{
				Dir:      dir,
				LogLevel: "warn",
			})
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}
