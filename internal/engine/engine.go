// Package engine runs one annotation pass over the ledger: fetch every
// transaction, flag possible duplicates, fill in categories, write both back
// and report the outcome.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/marksman/internal/category"
	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/duplicates"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/report"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/google/uuid"
)

// Options selects what a run does.
type Options struct {
	DryRun         bool // compute annotations but write nothing
	SkipDuplicates bool
	SkipCategories bool
	Notify         bool // send the summary through the notifier
}

// Engine orchestrates a run against one ledger.
type Engine struct {
	ledger   service.Ledger
	keywords service.KeywordMapSource
	notifier service.Notifier
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// New creates an engine. keywords and notifier may be nil; categorization or
// notification is then skipped with an error recorded in the summary.
func New(ledger service.Ledger, keywords service.KeywordMapSource, notifier service.Notifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		ledger:   ledger,
		keywords: keywords,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run performs a single pass. A fetch failure aborts the run. Duplicate and
// category write-backs are attempted independently of each other, and every
// failure is returned joined once everything has been attempted. The summary
// is always non-nil.
func (e *Engine) Run(ctx context.Context, opts Options) (*service.RunSummary, error) {
	summary := &service.RunSummary{
		RunID:     e.newRunID(),
		StartedAt: e.now(),
		DryRun:    opts.DryRun,
	}
	logger := e.logger.With("run_id", summary.RunID)
	logger.Info("Starting run", "dry_run", opts.DryRun)

	transactions, err := e.ledger.FetchTransactions(ctx)
	if err != nil {
		summary.Duration = e.now().Sub(summary.StartedAt)
		err = fmt.Errorf("failed to fetch transactions: %w", err)
		logger.Error("Fetch failed", "error", err)
		if opts.Notify && e.notifier != nil {
			if nerr := e.notifier.Send(ctx, fmt.Sprintf("marksman run %s failed: %v", summary.RunID, err)); nerr != nil {
				logger.Warn("Failed to deliver failure notice", "error", nerr)
			}
		}
		return summary, err
	}
	summary.Transactions = len(transactions)
	logger.Info("Fetched transactions", "count", len(transactions))

	var errs []error

	dupStep := e.markDuplicates(ctx, logger, transactions, opts)
	summary.Steps = append(summary.Steps, dupStep)
	if dupStep.Err != nil {
		errs = append(errs, dupStep.Err)
	}

	catStep := e.setCategories(ctx, logger, transactions, opts)
	summary.Steps = append(summary.Steps, catStep)
	if catStep.Err != nil {
		errs = append(errs, catStep.Err)
	}

	summary.Duration = e.now().Sub(summary.StartedAt)

	if opts.Notify {
		if err := e.notify(ctx, summary); err != nil {
			logger.Error("Notification failed", "error", err)
			errs = append(errs, err)
		}
	}

	logger.Info("Run finished", "duration", summary.Duration, "errors", len(errs))
	return summary, errors.Join(errs...)
}

func (e *Engine) markDuplicates(ctx context.Context, logger *slog.Logger, transactions []model.Transaction, opts Options) service.StepResult {
	step := service.StepResult{Kind: service.DuplicateMark}
	if opts.SkipDuplicates {
		step.Skipped = true
		return step
	}

	step.Rows = duplicates.Find(transactions)
	step.Found = len(step.Rows)
	logger.Info("Found possible duplicates", "count", step.Found)

	return e.write(ctx, logger, step, opts)
}

func (e *Engine) setCategories(ctx context.Context, logger *slog.Logger, transactions []model.Transaction, opts Options) service.StepResult {
	step := service.StepResult{Kind: service.CategoryMark}
	if opts.SkipCategories {
		step.Skipped = true
		return step
	}

	if e.keywords == nil {
		step.Skipped = true
		step.Err = fmt.Errorf("%w: no keyword map configured", common.ErrMissingConfig)
		logger.Warn("Skipping categorization", "error", step.Err)
		return step
	}

	km, err := e.keywords.LoadKeywordMap(ctx)
	if err != nil {
		step.Skipped = true
		step.Err = fmt.Errorf("failed to load keyword map: %w", err)
		logger.Warn("Skipping categorization", "error", step.Err)
		return step
	}
	logger.Debug("Loaded keyword map", "keywords", len(km))

	step.Rows = category.Match(transactions, km)
	step.Found = len(step.Rows)
	logger.Info("Found subject-to-category matches", "count", step.Found)

	return e.write(ctx, logger, step, opts)
}

func (e *Engine) write(ctx context.Context, logger *slog.Logger, step service.StepResult, opts Options) service.StepResult {
	if opts.DryRun || len(step.Rows) == 0 {
		return step
	}

	if err := e.ledger.ApplyAnnotations(ctx, step.Kind, step.Rows); err != nil {
		step.Err = fmt.Errorf("failed to write %s annotations: %w", step.Kind, err)
		logger.Error("Write-back failed", "kind", step.Kind, "error", err)
		return step
	}

	step.Written = len(step.Rows)
	logger.Info("Wrote annotations", "kind", step.Kind, "count", step.Written)
	return step
}

func (e *Engine) notify(ctx context.Context, summary *service.RunSummary) error {
	if e.notifier == nil {
		return fmt.Errorf("%w: notifications requested but no notifier configured", common.ErrMissingConfig)
	}
	if err := e.notifier.Send(ctx, report.Summary(summary)); err != nil {
		return fmt.Errorf("failed to send summary: %w", err)
	}
	return nil
}
