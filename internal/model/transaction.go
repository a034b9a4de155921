package model

import (
	"strings"
	"time"
)

// FirstDataRow is the ledger row of the first transaction. Row 1 holds the header.
const FirstDataRow = 2

// Transaction represents a single row read from the ledger.
type Transaction struct {
	Date     time.Time // Wall-clock time, stored as UTC
	Account  string    // Funding source, may carry trailing whitespace
	Subject  string    // Free text, may start with a Flag prefix
	Currency string
	Category string // Empty when unclassified
	Amount   int64
}

// TrimmedAccount returns the account with trailing spaces and tabs removed.
func (t Transaction) TrimmedAccount() string {
	return strings.TrimRight(t.Account, " \t")
}

// Flag returns the review state encoded in the subject prefix.
func (t Transaction) Flag() Flag {
	return ParseFlag(t.Subject)
}

// RowFor returns the ledger row of the transaction at index i of a fetched slice.
func RowFor(i int) int {
	return FirstDataRow + i
}

// Annotation is a rewritten copy of a transaction together with the ledger
// row it should be written back to.
type Annotation struct {
	Transaction Transaction
	Row         int
}
