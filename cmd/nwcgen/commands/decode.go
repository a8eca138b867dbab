package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/memzero"
	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

func decodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <npub|nsec>",
		Short: "Decode a NIP-19 key to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, raw, err := nostr.Decode(args[0])
			if err != nil {
				return err
			}
			defer memzero.Zero(raw)

			ui.PrintDecoded(cmd.OutOrStdout(), role, hex.EncodeToString(raw), opts.reveal)
			return nil
		},
	}
}
