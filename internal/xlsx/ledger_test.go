package xlsx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// createLedger writes a workbook with a header row followed by rows.
func createLedger(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "" {
		require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	} else {
		sheet = f.GetSheetName(0)
	}

	header := []any{"Account", "Subject", "Date", "Amount", "Currency", "Category"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row))
	}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func cellValue(t *testing.T, path, sheet, cell string) string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestLedger_FetchTransactions(t *testing.T) {
	path := createLedger(t, "Transactions", [][]any{
		{"Bank A ", "Coffee", 45658.25, 25000, "IDR", ""},
		{"Bank A", "?dupof(2) Coffee", "2025-01-02 10:00", -1500, "IDR", "Food"},
	})

	l := NewLedger(path, "Transactions", slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := l.FetchTransactions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Transaction{
		{
			Account: "Bank A ", Subject: "Coffee", Currency: "IDR",
			Date:   time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC),
			Amount: 25000,
		},
		{
			Account: "Bank A", Subject: "?dupof(2) Coffee", Currency: "IDR", Category: "Food",
			Date:   time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
			Amount: -1500,
		},
	}, got)
}

func TestLedger_FetchTransactions_FirstSheetByDefault(t *testing.T) {
	path := createLedger(t, "", [][]any{
		{"Bank A", "Coffee", 45658.0, 100, "IDR", ""},
	})

	got, err := NewLedger(path, "", nil).FetchTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLedger_FetchTransactions_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLedger(filepath.Join(t.TempDir(), "nope.xlsx"), "", nil).FetchTransactions(context.Background())
		assert.ErrorIs(t, err, common.ErrFetch)
	})

	t.Run("missing sheet", func(t *testing.T) {
		path := createLedger(t, "Transactions", nil)
		_, err := NewLedger(path, "Ledger", nil).FetchTransactions(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrFetch)
		assert.Contains(t, err.Error(), `sheet "Ledger" not found`)
	})

	t.Run("blank row between transactions", func(t *testing.T) {
		path := createLedger(t, "Transactions", [][]any{
			{"Bank A", "one", 45658.0, 100, "IDR", ""},
			{},
			{"Bank A", "three", 45658.0, 100, "IDR", ""},
		})
		_, err := NewLedger(path, "Transactions", nil).FetchTransactions(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrFetch)
		assert.Contains(t, err.Error(), "row 3")
	})
}

func TestLedger_ApplyAnnotations(t *testing.T) {
	path := createLedger(t, "Transactions", [][]any{
		{"Bank A", "Coffee", 45658.0, 100, "IDR", ""},
		{"Bank A", "Coffee", 45658.5, 100, "IDR", ""},
	})
	l := NewLedger(path, "Transactions", nil)

	require.NoError(t, l.ApplyAnnotations(context.Background(), service.DuplicateMark, []model.Annotation{
		{Row: 2, Transaction: model.Transaction{Subject: "?dupof(3) Coffee"}},
	}))
	require.NoError(t, l.ApplyAnnotations(context.Background(), service.CategoryMark, []model.Annotation{
		{Row: 3, Transaction: model.Transaction{Category: "Food"}},
	}))

	assert.Equal(t, "?dupof(3) Coffee", cellValue(t, path, "Transactions", "B2"))
	assert.Equal(t, "Coffee", cellValue(t, path, "Transactions", "B3"))
	assert.Equal(t, "Food", cellValue(t, path, "Transactions", "F3"))
	assert.Equal(t, "", cellValue(t, path, "Transactions", "F2"))

	got, err := l.FetchTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "?dupof(3) Coffee", got[0].Subject)
	assert.Equal(t, "Food", got[1].Category)
}

func TestLedger_ApplyAnnotations_Errors(t *testing.T) {
	path := createLedger(t, "Transactions", nil)

	err := NewLedger(path, "Transactions", nil).ApplyAnnotations(context.Background(), "amount", []model.Annotation{{Row: 2}})
	assert.ErrorIs(t, err, common.ErrWrite)

	err = NewLedger(filepath.Join(t.TempDir(), "nope.xlsx"), "", nil).
		ApplyAnnotations(context.Background(), service.CategoryMark, []model.Annotation{{Row: 2}})
	assert.ErrorIs(t, err, common.ErrWrite)

	assert.NoError(t, NewLedger(filepath.Join(t.TempDir(), "nope.xlsx"), "", nil).
		ApplyAnnotations(context.Background(), service.CategoryMark, nil))
}
