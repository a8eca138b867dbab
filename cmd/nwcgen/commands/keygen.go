package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

func keygenCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new client key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := nostr.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer kp.Zero()

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintf(out, "pubkey=%s\nnpub=%s\n", kp.PublicHex(), kp.Npub())
				if opts.reveal {
					fmt.Fprintf(out, "seckey=%s\nnsec=%s\n", kp.SecretHex(), kp.Nsec())
				}
				return nil
			}
			ui.PrintKeyPair(out, kp, opts.reveal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print key=value lines instead of the formatted view")
	return cmd
}
