package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Amr-9/nwcgen/internal/logging"
	"github.com/Amr-9/nwcgen/internal/session"
	"github.com/Amr-9/nwcgen/internal/ui"
	"github.com/Amr-9/nwcgen/pkg/generator"
	"github.com/Amr-9/nwcgen/pkg/generator/cpu"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

// runInteractive is the menu-driven console used when no subcommand is given.
func runInteractive(cmd *cobra.Command, opts *options) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	sess := session.New(nil, nwc.NewBuilder(nil, logging.Log))
	defer sess.Close()
	sess.SetReveal(opts.reveal)

	ui.ClearScreen()
	ui.PrintWelcomeBanner(version)

	for {
		client := sess.Client()

		switch ui.SelectAction(reader, client != nil, sess.Revealed()) {
		case ui.ActionGenerate:
			kp, err := sess.Generate()
			if err != nil {
				ui.PrintError(out, err)
				continue
			}
			ui.PrintKeyPair(out, kp, sess.Revealed())

		case ui.ActionToggleReveal:
			if client == nil {
				ui.PrintError(out, session.ErrNoClientKeys)
				continue
			}
			ui.PrintKeyPair(out, client, sess.ToggleReveal())

		case ui.ActionBuildURI:
			if client == nil {
				ui.PrintError(out, session.ErrNoClientKeys)
				continue
			}
			uri, err := sess.BuildURI(ui.GetRelay(reader, opts.cfg.Relay))
			if err != nil {
				ui.PrintError(out, err)
				continue
			}
			ui.PrintURI(out, uri)

		case ui.ActionVanity:
			prefix, suffix := ui.GetVanityPattern(reader)
			config := &generator.Config{Prefix: prefix, Suffix: suffix, Workers: opts.cfg.Workers}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			result, err := searchVanity(ctx, out, cpu.NewCPUGenerator(opts.cfg.Workers), config, sess.Revealed())
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					ui.PrintError(out, err)
				}
				continue
			}
			sess.Use(result.Keys)
			fmt.Fprintf(out, "\n    %s✓ Now using %s as client keys%s\n", ui.ColorGreen, result.Npub, ui.ColorReset)

		case ui.ActionQuit:
			return nil

		default:
			fmt.Fprintf(out, "    %s⚠ Unknown choice%s\n", ui.ColorRed, ui.ColorReset)
		}

		if !ui.AskToContinue(reader) {
			return nil
		}
	}
}
