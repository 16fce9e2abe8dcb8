package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plinth/internal/logging"
	"plinth/internal/store"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage stored connection profiles",
	}
	cmd.AddCommand(sessionSaveCmd(), sessionShowCmd(), sessionListCmd(), sessionDeleteCmd())
	return cmd
}

// sessionName resolves the optional name argument, standing in the default
// profile when none is given.
func sessionName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return store.DefaultSettingsName
}

func sessionSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> [key=value ...]",
		Short: "Write a profile from key=value pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			w, err := appCtx.Sessions.OpenWrite(name)
			if err != nil {
				return err
			}
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					w.Close()
					return fmt.Errorf("argument %q is not key=value", pair)
				}
				if err := w.PutString(key, value); err != nil {
					w.Close()
					return err
				}
			}
			if err := w.Close(); err != nil {
				return err
			}
			logging.Infof("saved session %q", name)
			return nil
		},
	}
}

func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print a profile's settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := sessionName(args)
			r, err := appCtx.Sessions.OpenRead(name)
			if err != nil {
				return err
			}
			defer r.Close()
			if !r.Exists() {
				fmt.Printf("%s: no stored profile (defaults apply)\n", name)
				return nil
			}
			r.Each(func(key, value string) {
				fmt.Printf("%s=%s\n", key, value)
			})
			return nil
		},
	}
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profile names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := appCtx.Sessions.Enum()
			defer e.Close()
			for {
				name, ok := e.Next()
				if !ok {
					return nil
				}
				fmt.Println(name)
			}
		},
	}
}

func sessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Remove a stored profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Sessions.Delete(sessionName(args))
		},
	}
}
