package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plinth/internal/logging"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Move the random seed blob in and out of the store",
	}
	cmd.AddCommand(seedImportCmd(), seedExportCmd())
	return cmd
}

func seedImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Store a file's bytes as the random seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			// Seed writes are best effort by design; nothing to report.
			appCtx.Seed.Write(data)
			logging.Debugf("imported %d seed bytes", len(data))
			return nil
		},
	}
}

func seedExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Stream the stored random seed into a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.OpenFile(args[0], os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			var n int
			appCtx.Seed.Read(func(chunk []byte) {
				m, _ := out.Write(chunk)
				n += m
			})
			if err := out.Close(); err != nil {
				return err
			}
			fmt.Printf("wrote %d bytes\n", n)
			return nil
		},
	}
}
