package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/marksman/internal/cli"
	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/engine"
	"github.com/Veraticus/marksman/internal/report"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mark possible duplicates and fill in categories",
		Long: `Fetch every transaction from the ledger, mark possible duplicates and fill in
missing categories, then write both back.

The two write-backs are independent: if one fails the other is still
attempted, and the command exits non-zero after reporting both.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			return runEngine(cmd, opts)
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Bool("skip-duplicates", false, "do not look for duplicates")
	cmd.Flags().Bool("skip-categories", false, "do not fill in categories")

	return cmd
}

func duplicatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Only mark possible duplicates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			opts.SkipCategories = true
			return runEngine(cmd, opts)
		},
	}
	addRunFlags(cmd)
	return cmd
}

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Only fill in missing categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			opts.SkipDuplicates = true
			return runEngine(cmd, opts)
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "show what would be written without touching the ledger")
	cmd.Flags().Bool("notify", false, "post a summary to Discord when done")
}

func runOptions(cmd *cobra.Command) (engine.Options, error) {
	var opts engine.Options
	var err error

	if opts.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return opts, err
	}
	if opts.Notify, err = cmd.Flags().GetBool("notify"); err != nil {
		return opts, err
	}
	// Only the run command carries the skip flags.
	if cmd.Flags().Lookup("skip-duplicates") != nil {
		if opts.SkipDuplicates, err = cmd.Flags().GetBool("skip-duplicates"); err != nil {
			return opts, err
		}
		if opts.SkipCategories, err = cmd.Flags().GetBool("skip-categories"); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

func runEngine(cmd *cobra.Command, opts engine.Options) error {
	ctx := cmd.Context()
	logger := slog.Default()

	ledger, err := newLedger(ctx, logger)
	if err != nil {
		return err
	}

	var notifier service.Notifier
	if opts.Notify {
		n, err := newNotifier(logger)
		if err != nil {
			return err
		}
		if n == nil {
			return fmt.Errorf("%w: --notify needs notify.discord.bot_token and notify.discord.channel_id", common.ErrMissingConfig)
		}
		notifier = n
	}

	summary, runErr := engine.New(ledger, newKeywordSource(logger), notifier, logger).Run(ctx, opts)

	out := cmd.OutOrStdout()
	if opts.DryRun {
		for _, step := range summary.Steps {
			if !step.Skipped {
				report.PrintAnnotationsTable(out, step.Kind, step.Rows)
			}
		}
	}
	fmt.Fprintln(out, cli.RenderRunSummary(summary))

	return runErr
}
