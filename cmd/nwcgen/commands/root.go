package commands

import (
	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/config"
	"github.com/Amr-9/nwcgen/internal/logging"
)

const version = "0.1.0"

// options are shared by every subcommand of one root command.
type options struct {
	envFile  string
	logLevel string
	debug    bool
	reveal   bool
	cfg      *config.Config
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the nwcgen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "nwcgen",
		Short:         "Nostr key and Wallet Connect URI generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = cfg.LogLevel
			}
			if err := logging.Setup(opts.logLevel); err != nil {
				return err
			}
			if opts.debug {
				logging.Debug(true)
			}
			if !cmd.Flags().Changed("reveal") {
				opts.reveal = cfg.Reveal
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "path to .env file (empty to skip)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging (overrides --log-level)")
	root.PersistentFlags().BoolVar(&opts.reveal, "reveal", false, "show secret keys instead of masking them")

	root.AddCommand(
		keygenCmd(opts),
		uriCmd(opts),
		decodeCmd(opts),
		inspectCmd(opts),
		vanityCmd(opts),
	)
	return root
}
