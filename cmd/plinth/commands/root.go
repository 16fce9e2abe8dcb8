package commands

import (
	"github.com/spf13/cobra"

	"plinth/internal/app"
	"plinth/internal/logging"
)

var (
	dirFlag      string
	logLevelFlag string

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "plinth",
		Short:         "Inspect and edit the client's stored profiles, host keys and seed",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd)
			if err != nil {
				return err
			}
			logging.SetLevel(cfg.LogLevel)
			logging.Debugf("storage root %s", cfg.Dir)

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dirFlag, "dir", "", "storage root (default ~/.plinth)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log verbosity (debug, info, warn, error)")

	root.AddCommand(sessionCmd(), hostkeyCmd(), seedCmd(), configCmd())
	return root.Execute()
}
