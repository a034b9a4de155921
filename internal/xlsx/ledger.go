// Package xlsx keeps the ledger in a local Excel workbook. It reads and
// writes the same column layout as the Google Sheets backend.
package xlsx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/ledger"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/xuri/excelize/v2"
)

// Ledger implements service.Ledger over a workbook on disk.
type Ledger struct {
	logger *slog.Logger
	Path   string
	Sheet  string // empty selects the first sheet
}

// NewLedger returns a ledger for the workbook at path.
func NewLedger(path, sheet string, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		Path:   path,
		Sheet:  sheet,
		logger: logger.With("component", "xlsx", "path", path),
	}
}

func (l *Ledger) sheetName(f *excelize.File) (string, error) {
	if l.Sheet == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return name, nil
	}
	if idx, err := f.GetSheetIndex(l.Sheet); err != nil || idx < 0 {
		return "", fmt.Errorf("sheet %q not found", l.Sheet)
	}
	return l.Sheet, nil
}

// FetchTransactions implements service.LedgerSource. Cells are read raw, so
// date cells arrive as serial numbers regardless of their display format.
func (l *Ledger) FetchTransactions(_ context.Context) ([]model.Transaction, error) {
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", common.ErrFetch, l.Path, err)
	}
	defer func() { _ = f.Close() }()

	sheet, err := l.sheetName(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetch, err)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %w", common.ErrFetch, sheet, err)
	}

	// Header row
	if len(rows) > 0 {
		rows = rows[1:]
	}

	cells := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		cells = append(cells, values)
	}
	for len(cells) > 0 && ledger.IsBlankRow(cells[len(cells)-1]) {
		cells = cells[:len(cells)-1]
	}

	transactions, err := ledger.DecodeRows(cells)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("fetched ledger rows", "sheet", sheet, "rows", len(transactions))
	return transactions, nil
}

// ApplyAnnotations implements service.LedgerSink. The workbook is saved once
// after every cell has been set.
func (l *Ledger) ApplyAnnotations(_ context.Context, kind service.AnnotationKind, rows []model.Annotation) error {
	column, err := ledger.ColumnFor(kind)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}
	if len(rows) == 0 {
		return nil
	}

	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", common.ErrWrite, l.Path, err)
	}
	defer func() { _ = f.Close() }()

	sheet, err := l.sheetName(f)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}

	for _, a := range rows {
		cell := fmt.Sprintf("%s%d", column, a.Row)
		if err := f.SetCellValue(sheet, cell, ledger.CellValue(kind, a.Transaction)); err != nil {
			return fmt.Errorf("%w: setting %s!%s: %w", common.ErrWrite, sheet, cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: saving %s: %w", common.ErrWrite, l.Path, err)
	}

	l.logger.Debug("wrote annotations", "kind", kind, "cells", len(rows))
	return nil
}
