// Package service defines the contracts between the annotation engine and
// the systems it reads from and writes to.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/marksman/internal/model"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=interfaces.go

// AnnotationKind selects which ledger column an annotation rewrites.
type AnnotationKind string

const (
	// DuplicateMark rewrites the subject column.
	DuplicateMark AnnotationKind = "duplicate"
	// CategoryMark rewrites the category column.
	CategoryMark AnnotationKind = "category"
)

// LedgerSource reads every transaction row of the ledger in row order.
type LedgerSource interface {
	FetchTransactions(ctx context.Context) ([]model.Transaction, error)
}

// LedgerSink writes annotations back to the ledger. Only the column selected
// by kind is touched on each annotated row.
type LedgerSink interface {
	ApplyAnnotations(ctx context.Context, kind AnnotationKind, rows []model.Annotation) error
}

// Ledger is a ledger that can be both read and written.
type Ledger interface {
	LedgerSource
	LedgerSink
}

// KeywordMapSource loads the keyword to category mapping.
type KeywordMapSource interface {
	LoadKeywordMap(ctx context.Context) (model.KeywordMap, error)
}

// Notifier delivers a plain text report.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// StepResult records the outcome of one annotation pass.
type StepResult struct {
	Err     error
	Kind    AnnotationKind
	Rows    []model.Annotation
	Found   int
	Written int
	Skipped bool
}

// RunSummary contains the outcome of a single engine run.
type RunSummary struct {
	StartedAt    time.Time
	RunID        string
	Steps        []StepResult
	Duration     time.Duration
	Transactions int
	DryRun       bool
}

// Step returns the result recorded for kind, if any.
func (s *RunSummary) Step(kind AnnotationKind) (StepResult, bool) {
	for _, step := range s.Steps {
		if step.Kind == kind {
			return step, true
		}
	}
	return StepResult{}, false
}
