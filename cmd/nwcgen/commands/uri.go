package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/logging"
	"github.com/Amr-9/nwcgen/internal/memzero"
	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

func uriCmd(opts *options) *cobra.Command {
	var (
		relay  string
		secret string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "uri",
		Short: "Build a nostr+walletconnect URI",
		Long: "Build a wallet connect URI for a client secret key. Without --secret a new client key\n" +
			"pair is generated first. Pass --secret - to read the key from stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if relay == "" {
				relay = opts.cfg.Relay
			}
			out := cmd.OutOrStdout()

			var kp *nostr.KeyPair
			if secret != "" {
				if secret == "-" {
					line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					if err != nil && line == "" {
						return errors.Wrap(nwc.ErrMissingClientKey, "read secret from stdin")
					}
					secret = strings.TrimSpace(line)
				}
				sk, err := nostr.ParseKey(secret, nostr.SecretRole)
				if err != nil {
					return errors.Wrap(err, "--secret")
				}
				kp, err = nostr.FromSecret(sk)
				memzero.Zero(sk)
				if err != nil {
					return errors.Wrap(err, "--secret")
				}
			} else {
				var err error
				kp, err = nostr.GenerateKeyPair()
				if err != nil {
					return err
				}
				if !raw {
					ui.PrintKeyPair(out, kp, opts.reveal)
				}
			}
			defer kp.Zero()

			sk := kp.SecretKey()
			defer memzero.Zero(sk[:])

			uri, err := nwc.NewBuilder(nil, logging.Log).Build(sk[:], relay)
			if err != nil {
				return err
			}

			if raw {
				fmt.Fprintln(out, uri)
				return nil
			}
			ui.PrintURI(out, uri)
			return nil
		},
	}

	cmd.Flags().StringVar(&relay, "relay", "", "relay URL (default $NWC_RELAY)")
	cmd.Flags().StringVar(&secret, "secret", "", "client secret key as hex or nsec, or - for stdin")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the URI")
	return cmd
}
