// Package testutil builds ledger fixtures for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/marksman/internal/ledger"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/xuri/excelize/v2"
)

// DateLayout is the layout Row expects its date in.
const DateLayout = "2006-01-02 15:04"

// LedgerBuilder accumulates ledger rows in order.
//
// Example:
//
//	rows := testutil.NewLedgerBuilder(t).
//		Row("Bank A", "Coffee", "2025-01-01 10:00", -25000).
//		Row("Bank B", "Salary", "2025-01-05 09:00", 1000000).WithCategory("Income").
//		Build()
type LedgerBuilder struct {
	t    *testing.T
	rows []model.Transaction
}

// NewLedgerBuilder creates an empty builder.
func NewLedgerBuilder(t *testing.T) *LedgerBuilder {
	t.Helper()
	return &LedgerBuilder{t: t}
}

// Row appends a transaction in IDR.
func (b *LedgerBuilder) Row(account, subject, date string, amount int64) *LedgerBuilder {
	b.t.Helper()
	b.rows = append(b.rows, model.Transaction{
		Account:  account,
		Subject:  subject,
		Date:     ParseTime(b.t, date),
		Amount:   amount,
		Currency: "IDR",
	})
	return b
}

// WithCategory sets the category of the last appended row.
func (b *LedgerBuilder) WithCategory(category string) *LedgerBuilder {
	b.t.Helper()
	if len(b.rows) == 0 {
		b.t.Fatal("WithCategory called before Row")
	}
	b.rows[len(b.rows)-1].Category = category
	return b
}

// Build returns a copy of the accumulated rows.
func (b *LedgerBuilder) Build() []model.Transaction {
	return append([]model.Transaction(nil), b.rows...)
}

// ParseTime parses a DateLayout timestamp as a wall-clock time in UTC.
func ParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return ts
}

// WriteXLSX saves rows as a workbook in the ledger layout, dates as serial
// numbers, and returns its path. An empty sheet keeps the default sheet name.
func WriteXLSX(t *testing.T, sheet string, rows []model.Transaction) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("renaming sheet: %v", err)
	}

	header := []any{"Account", "Subject", "Date", "Amount", "Currency", "Category"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("writing header: %v", err)
	}

	for i, txn := range rows {
		values := []any{txn.Account, txn.Subject, ledger.TimeToSerial(txn.Date), txn.Amount, txn.Currency, txn.Category}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", model.RowFor(i)), &values); err != nil {
			t.Fatalf("writing row %d: %v", model.RowFor(i), err)
		}
	}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}
