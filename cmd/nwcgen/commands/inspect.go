package commands

import (
	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

func inspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <uri>",
		Short: "Show the parts of a wallet connect URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := nwc.Parse(args[0])
			if err != nil {
				return err
			}

			client, err := conn.ClientKeys()
			if err != nil {
				return err
			}
			defer client.Zero()

			ui.PrintConnection(cmd.OutOrStdout(), conn, client.Npub(), opts.reveal)
			return nil
		},
	}
}
