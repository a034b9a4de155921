// Package ledger describes the column layout shared by every ledger backend
// and decodes raw cells into transactions.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
)

// Ledger columns, one transaction per row. Row 1 is a header.
const (
	ColumnAccount  = "A"
	ColumnSubject  = "B"
	ColumnDate     = "C"
	ColumnAmount   = "D"
	ColumnCurrency = "E"
	ColumnCategory = "F"

	// ColumnCount is the number of columns a transaction row spans.
	ColumnCount = 6
)

// serialEpoch is day zero of spreadsheet serial dates.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var textDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

// ColumnFor returns the column an annotation kind rewrites.
func ColumnFor(kind service.AnnotationKind) (string, error) {
	switch kind {
	case service.DuplicateMark:
		return ColumnSubject, nil
	case service.CategoryMark:
		return ColumnCategory, nil
	default:
		return "", fmt.Errorf("unknown annotation kind %q", kind)
	}
}

// CellValue returns the value an annotation kind writes for a transaction.
func CellValue(kind service.AnnotationKind, txn model.Transaction) string {
	if kind == service.CategoryMark {
		return txn.Category
	}
	return txn.Subject
}

// SerialToTime converts a spreadsheet serial date into a wall-clock time in UTC,
// rounded to the nearest second.
func SerialToTime(serial float64) time.Time {
	seconds := int64(math.Round(serial * 86400))
	return serialEpoch.Add(time.Duration(seconds) * time.Second)
}

// TimeToSerial is the inverse of SerialToTime.
func TimeToSerial(t time.Time) float64 {
	return float64(t.Sub(serialEpoch)/time.Second) / 86400
}

// ParseRow decodes one ledger row as returned with unformatted values.
func ParseRow(cells []any) (model.Transaction, error) {
	padded := make([]any, ColumnCount)
	copy(padded, cells)

	date, err := parseDate(padded[2])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("column %s: %w", ColumnDate, err)
	}

	amount, err := parseAmount(padded[3])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("column %s: %w", ColumnAmount, err)
	}

	return model.Transaction{
		Account:  cellString(padded[0]),
		Subject:  cellString(padded[1]),
		Date:     date,
		Amount:   amount,
		Currency: cellString(padded[4]),
		Category: cellString(padded[5]),
	}, nil
}

// DecodeRows decodes every data row of a ledger, starting at
// model.FirstDataRow. A blank row between transactions is an error, since
// skipping it would shift the row numbers of everything after it.
func DecodeRows(rows [][]any) ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0, len(rows))
	for i, cells := range rows {
		row := model.RowFor(i)
		if IsBlankRow(cells) {
			return nil, fmt.Errorf("%w: row %d is empty", common.ErrFetch, row)
		}
		txn, err := ParseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", common.ErrFetch, row, err)
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// IsBlankRow reports whether every cell of a row is empty.
func IsBlankRow(cells []any) bool {
	for _, c := range cells {
		if cellString(c) != "" {
			return false
		}
	}
	return true
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func parseDate(v any) (time.Time, error) {
	switch val := v.(type) {
	case float64:
		return SerialToTime(val), nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, fmt.Errorf("date is empty")
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return SerialToTime(serial), nil
		}
		for _, layout := range textDateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	case nil:
		return time.Time{}, fmt.Errorf("date is empty")
	default:
		return time.Time{}, fmt.Errorf("unexpected date value %v", val)
	}
}

func parseAmount(v any) (int64, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("amount is not finite")
		}
		return int64(math.Round(val)), nil
	case string:
		s := strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(val)
		if s == "" {
			return 0, fmt.Errorf("amount is empty")
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("unrecognized amount %q", val)
		}
		return int64(math.Round(f)), nil
	case nil:
		return 0, fmt.Errorf("amount is empty")
	default:
		return 0, fmt.Errorf("unexpected amount value %v", val)
	}
}
