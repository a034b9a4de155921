// Package duplicates flags ledger rows that look like repeated entries of the
// same transaction.
//
// Rows are grouped by exact amount, ordered by date, and every adjacent pair
// on the same account that lies within MaxDaysApart days is a candidate. One
// member of each candidate pair is the original and keeps its subject; the
// other is the duplicate and gets its subject rewritten to "?dupof(<row>) ...",
// where row is the ledger row of the original.
package duplicates

import (
	"slices"
	"strconv"
	"time"

	"github.com/Veraticus/marksman/internal/model"
)

// MaxDaysApart is the largest day distance, rounded up, between two candidates.
const MaxDaysApart = 2

const secondsPerDay = 24 * 60 * 60

type rowTxn struct {
	txn  model.Transaction
	flag model.Flag
	row  int
}

// Find returns an annotation for every row that looks like a duplicate of
// another row. The input is not modified.
//
// Groups are visited in ascending amount order and pairs within a group in
// ascending date order, so the output order is deterministic.
func Find(transactions []model.Transaction) []model.Annotation {
	groups := make(map[int64][]rowTxn)
	for i, txn := range transactions {
		flag := txn.Flag()
		if flag == model.FlagDuplicate {
			continue
		}
		groups[txn.Amount] = append(groups[txn.Amount], rowTxn{
			txn:  txn,
			flag: flag,
			row:  model.RowFor(i),
		})
	}

	amounts := make([]int64, 0, len(groups))
	for amount, group := range groups {
		if len(group) > 1 {
			amounts = append(amounts, amount)
		}
	}
	slices.Sort(amounts)

	var annotations []model.Annotation
	for _, amount := range amounts {
		group := groups[amount]
		slices.SortStableFunc(group, func(a, b rowTxn) int {
			return a.txn.Date.Compare(b.txn.Date)
		})

		for i := 0; i+1 < len(group); i++ {
			if a, ok := comparePair(group[i], group[i+1]); ok {
				annotations = append(annotations, a)
			}
		}
	}

	return annotations
}

// comparePair decides whether next duplicates current (or the other way
// round) and builds the annotation for the duplicate side.
func comparePair(current, next rowTxn) (model.Annotation, bool) {
	days := DaysBetween(current.txn.Date, next.txn.Date)
	if abs(days) > MaxDaysApart {
		return model.Annotation{}, false
	}
	if current.txn.TrimmedAccount() != next.txn.TrimmedAccount() {
		return model.Annotation{}, false
	}

	currentConfirmed := current.flag == model.FlagNotDuplicate
	nextConfirmed := next.flag == model.FlagNotDuplicate
	if currentConfirmed && nextConfirmed {
		return model.Annotation{}, false
	}

	original, duplicate := current, next
	if shouldFlip(current, next) {
		original, duplicate = next, current
	}

	return model.Annotation{
		Transaction: markDuplicate(duplicate.txn, original.row),
		Row:         duplicate.row,
	}, true
}

// shouldFlip reports whether the earlier row of a pair is the duplicate.
// A confirmed later row always stays the original. Otherwise an earlier row
// at exactly 00:00:00 (no time in the bank export) loses to a later row that
// has a time of day.
func shouldFlip(current, next rowTxn) bool {
	if next.flag == model.FlagNotDuplicate && current.flag != model.FlagNotDuplicate {
		return true
	}
	return isMidnight(current.txn.Date) && !isMidnight(next.txn.Date)
}

// markDuplicate returns a copy of txn whose subject points at originalRow.
func markDuplicate(txn model.Transaction, originalRow int) model.Transaction {
	subject := "?dupof(" + strconv.Itoa(originalRow) + ")"
	if txn.Subject != "" {
		subject += " " + txn.Subject
	}
	txn.Subject = subject
	return txn
}

// DaysBetween returns the distance from a to b in whole days, rounding any
// partial day away from zero on the positive side (ceiling division).
func DaysBetween(a, b time.Time) int64 {
	seconds := b.Unix() - a.Unix()
	if seconds >= 0 {
		return (seconds + secondsPerDay - 1) / secondsPerDay
	}
	// Go truncates toward zero, which is the ceiling for negative values.
	return seconds / secondsPerDay
}

// TimeOfDay returns the seconds elapsed since midnight of t's wall clock.
func TimeOfDay(t time.Time) int64 {
	return mod(t.Unix(), secondsPerDay)
}

func isMidnight(t time.Time) bool {
	return TimeOfDay(t) == 0
}

func mod(a, b int64) int64 {
	return (a%b + b) % b
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
