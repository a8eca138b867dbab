package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator"
	"github.com/Amr-9/nwcgen/pkg/generator/cpu"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

const updateRate = 33 * time.Millisecond

func vanityCmd(opts *options) *cobra.Command {
	var (
		prefix  string
		suffix  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "vanity",
		Short: "Search for a key pair whose npub has a given prefix or suffix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = opts.cfg.Workers
			}
			config := &generator.Config{
				Prefix:  prefix,
				Suffix:  suffix,
				Workers: workers,
			}

			result, err := searchVanity(cmd.Context(), cmd.OutOrStdout(), cpu.NewCPUGenerator(workers), config, opts.reveal)
			if err != nil {
				return err
			}
			result.Keys.Zero()
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "npub prefix after npub1")
	cmd.Flags().StringVar(&suffix, "suffix", "", "npub suffix")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (default $NWC_WORKERS or CPU count)")
	return cmd
}

// searchVanity runs gen until it finds a match, the context ends or the user interrupts.
// The caller owns the returned key pair.
func searchVanity(ctx context.Context, out io.Writer, gen generator.Generator, config *generator.Config, reveal bool) (*generator.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	difficulty := generator.Difficulty(config.Prefix, config.Suffix)
	ui.PrintSearchInfo(out, config, difficulty)

	resultChan, err := gen.Start(ctx, config)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	ticker := time.NewTicker(updateRate)
	defer ticker.Stop()
	frame := 0

	for {
		select {
		case result, ok := <-resultChan:
			ui.ClearLine(out)
			if !ok {
				if err := gen.Err(); err != nil {
					return nil, err
				}
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, errors.Wrap(nostr.ErrRandomSourceUnavailable, "vanity search ended without a result")
			}
			elapsed := time.Since(startTime)
			stats := gen.Stats()
			ui.PrintVanityResult(out, result, elapsed, stats.Attempts, reveal)
			return &result, nil

		case <-ticker.C:
			ui.PrintProgress(out, gen.Stats(), difficulty, frame)
			frame++

		case <-sigChan:
			ui.ClearLine(out)
			stats := gen.Stats()
			fmt.Fprintf(out, "\n    %s⚠ Cancelled%s │ %s attempts │ %s\n",
				ui.ColorYellow+ui.ColorBold, ui.ColorReset,
				ui.FormatNumber(stats.Attempts),
				ui.FormatDuration(time.Since(startTime)))
			return nil, context.Canceled

		case <-ctx.Done():
			ui.ClearLine(out)
			return nil, ctx.Err()
		}
	}
}
