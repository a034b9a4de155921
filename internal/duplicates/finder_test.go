package duplicates

import (
	"testing"
	"time"

	"github.com/Veraticus/marksman/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

func txn(account, subject string, date time.Time, amount int64) model.Transaction {
	return model.Transaction{
		Account:  account,
		Subject:  subject,
		Date:     date,
		Amount:   amount,
		Currency: "IDR",
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         []model.Annotation
	}{
		{
			name: "within two days on same account",
			transactions: []model.Transaction{
				txn("Bank A", "Transaction 1", at(2025, 1, 1, 10, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 14, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Transaction 2", at(2025, 1, 2, 14, 0, 0), 100000)},
			},
		},
		{
			name: "five days apart",
			transactions: []model.Transaction{
				txn("Bank A", "Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 5, 0, 0, 0), 100000),
			},
		},
		{
			name: "different amounts",
			transactions: []model.Transaction{
				txn("Bank A", "Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 0, 0, 0), 150000),
			},
		},
		{
			name: "same magnitude opposite sign",
			transactions: []model.Transaction{
				txn("Bank A", "Refund", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Purchase", at(2025, 1, 2, 0, 0, 0), -100000),
			},
		},
		{
			name: "different accounts",
			transactions: []model.Transaction{
				txn("Bank A", "Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank B", "Transaction 2", at(2025, 1, 2, 0, 0, 0), 100000),
			},
		},
		{
			name: "trailing whitespace on account is ignored",
			transactions: []model.Transaction{
				txn("Bank A  ", "Transaction 1", at(2025, 1, 1, 9, 0, 0), 100000),
				txn("Bank A\t", "Transaction 2", at(2025, 1, 2, 9, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A\t", "?dupof(2) Transaction 2", at(2025, 1, 2, 9, 0, 0), 100000)},
			},
		},
		{
			name: "leading whitespace on account still differs",
			transactions: []model.Transaction{
				txn(" Bank A", "Transaction 1", at(2025, 1, 1, 9, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 9, 0, 0), 100000),
			},
		},
		{
			name: "already flagged row is never compared",
			transactions: []model.Transaction{
				txn("Bank A", "?dupof(10)Previous duplicate", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 0, 0, 0), 100000),
			},
		},
		{
			name: "both confirmed not duplicate",
			transactions: []model.Transaction{
				txn("Bank A", "!Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "!Transaction 2", at(2025, 1, 2, 0, 0, 0), 100000),
			},
		},
		{
			name: "later row confirmed flips the pair",
			transactions: []model.Transaction{
				txn("Bank A", "Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "!Transaction 2", at(2025, 1, 2, 0, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 2, Transaction: txn("Bank A", "?dupof(3) Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000)},
			},
		},
		{
			name: "earlier row confirmed keeps the later row as duplicate",
			transactions: []model.Transaction{
				txn("Bank A", "!Transaction 1", at(2025, 1, 1, 9, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 10, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Transaction 2", at(2025, 1, 2, 10, 0, 0), 100000)},
			},
		},
		{
			name: "confirmed earlier row at midnight still flips on time of day",
			transactions: []model.Transaction{
				txn("Bank A", "!Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Transaction 2", at(2025, 1, 2, 10, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 2, Transaction: txn("Bank A", "?dupof(3) !Transaction 1", at(2025, 1, 1, 0, 0, 0), 100000)},
			},
		},
		{
			name: "midnight earlier row flips against timed later row",
			transactions: []model.Transaction{
				txn("Bank A", "Imported", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Manual", at(2025, 1, 1, 10, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 2, Transaction: txn("Bank A", "?dupof(3) Imported", at(2025, 1, 1, 0, 0, 0), 100000)},
			},
		},
		{
			name: "both at midnight keeps input order",
			transactions: []model.Transaction{
				txn("Bank A", "Trx 1.1", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Trx 1.2", at(2025, 1, 2, 0, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Trx 1.2", at(2025, 1, 2, 0, 0, 0), 100000)},
			},
		},
		{
			name: "timed earlier row against midnight later row does not flip",
			transactions: []model.Transaction{
				txn("Bank A", "Manual", at(2025, 1, 1, 10, 30, 0), 100000),
				txn("Bank A", "Imported", at(2025, 1, 2, 0, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Imported", at(2025, 1, 2, 0, 0, 0), 100000)},
			},
		},
		{
			name: "empty duplicate subject gets bare marker",
			transactions: []model.Transaction{
				txn("Bank A", "Some text", at(2025, 1, 1, 8, 0, 0), 100000),
				txn("Bank A", "", at(2025, 1, 2, 8, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2)", at(2025, 1, 2, 8, 0, 0), 100000)},
			},
		},
		{
			name: "empty original subject",
			transactions: []model.Transaction{
				txn("Bank A", "", at(2025, 1, 1, 0, 0, 0), 100000),
				txn("Bank A", "Some text", at(2025, 1, 2, 0, 0, 0), 100000),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Some text", at(2025, 1, 2, 0, 0, 0), 100000)},
			},
		},
		{
			name: "input order does not matter, dates do",
			transactions: []model.Transaction{
				txn("Bank A", "Later", at(2025, 3, 2, 9, 0, 0), 500),
				txn("Bank A", "Earlier", at(2025, 3, 1, 9, 0, 0), 500),
			},
			want: []model.Annotation{
				{Row: 2, Transaction: txn("Bank A", "?dupof(3) Later", at(2025, 3, 2, 9, 0, 0), 500)},
			},
		},
		{
			name: "chain of three produces two annotations",
			transactions: []model.Transaction{
				txn("Bank A", "One", at(2025, 1, 1, 9, 0, 0), 700),
				txn("Bank A", "Two", at(2025, 1, 2, 9, 0, 0), 700),
				txn("Bank A", "Three", at(2025, 1, 3, 9, 0, 0), 700),
			},
			want: []model.Annotation{
				{Row: 3, Transaction: txn("Bank A", "?dupof(2) Two", at(2025, 1, 2, 9, 0, 0), 700)},
				{Row: 4, Transaction: txn("Bank A", "?dupof(3) Three", at(2025, 1, 3, 9, 0, 0), 700)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.transactions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_DayBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		first     time.Time
		second    time.Time
		wantFlags int
	}{
		{
			name:      "exactly two days",
			first:     at(2025, 1, 1, 10, 0, 0),
			second:    at(2025, 1, 3, 10, 0, 0),
			wantFlags: 1,
		},
		{
			name:      "two days and one second rounds up to three",
			first:     at(2025, 1, 1, 10, 0, 0),
			second:    at(2025, 1, 3, 10, 0, 1),
			wantFlags: 0,
		},
		{
			name:      "almost three days apart",
			first:     at(2025, 9, 6, 11, 43, 0),
			second:    at(2025, 9, 9, 10, 35, 0),
			wantFlags: 0,
		},
		{
			name:      "one day and a bit rounds up to two",
			first:     at(2025, 9, 6, 11, 43, 0),
			second:    at(2025, 9, 7, 23, 0, 0),
			wantFlags: 1,
		},
		{
			name:      "same instant",
			first:     at(2025, 1, 1, 10, 0, 0),
			second:    at(2025, 1, 1, 10, 0, 0),
			wantFlags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find([]model.Transaction{
				txn("Bank A", "first", tt.first, 100000),
				txn("Bank A", "second", tt.second, 100000),
			})
			assert.Len(t, got, tt.wantFlags)
		})
	}
}

func TestFind_MultipleGroupsOrderedByAmount(t *testing.T) {
	transactions := []model.Transaction{
		txn("Bank A", "Trx 2.1", at(2025, 1, 1, 0, 0, 0), 200000),
		txn("Bank A", "Trx 1.1", at(2025, 1, 1, 0, 0, 0), 100000),
		txn("Bank A", "Trx 2.2", at(2025, 1, 2, 0, 0, 0), 200000),
		txn("Bank A", "Trx 1.2", at(2025, 1, 2, 0, 0, 0), 100000),
	}

	got := Find(transactions)

	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Row)
	assert.Equal(t, "?dupof(3) Trx 1.2", got[0].Transaction.Subject)
	assert.Equal(t, 4, got[1].Row)
	assert.Equal(t, "?dupof(2) Trx 2.2", got[1].Transaction.Subject)
}

func TestFind_RowsCountFilteredTransactions(t *testing.T) {
	transactions := []model.Transaction{
		txn("Bank A", "?dupof(9) old", at(2025, 1, 1, 9, 0, 0), 300),
		txn("Bank A", "Unrelated", at(2025, 1, 1, 9, 0, 0), 999),
		txn("Bank A", "First", at(2025, 1, 1, 9, 0, 0), 300),
		txn("Bank A", "Second", at(2025, 1, 2, 9, 0, 0), 300),
	}

	got := Find(transactions)

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Row)
	assert.Equal(t, "?dupof(4) Second", got[0].Transaction.Subject)
}

func TestFind_DoesNotMutateInput(t *testing.T) {
	transactions := []model.Transaction{
		txn("Bank A", "B", at(2025, 1, 2, 9, 0, 0), 100),
		txn("Bank A", "A", at(2025, 1, 1, 9, 0, 0), 100),
	}
	before := append([]model.Transaction(nil), transactions...)

	_ = Find(transactions)

	assert.Equal(t, before, transactions)
}

func TestFind_Idempotent(t *testing.T) {
	transactions := []model.Transaction{
		txn("Bank A", "T1", at(2025, 1, 1, 10, 0, 0), 100000),
		txn("Bank A", "T2", at(2025, 1, 2, 14, 0, 0), 100000),
		txn("Bank B", "T3", at(2025, 1, 2, 14, 0, 0), 100000),
	}

	first := Find(transactions)
	assert.Equal(t, first, Find(transactions))

	applied := append([]model.Transaction(nil), transactions...)
	for _, a := range first {
		applied[a.Row-model.FirstDataRow] = a.Transaction
	}

	assert.Empty(t, Find(applied))
}

func TestFind_EmptyInput(t *testing.T) {
	assert.Empty(t, Find(nil))
	assert.Empty(t, Find([]model.Transaction{txn("Bank A", "only", at(2025, 1, 1, 0, 0, 0), 1)}))
}

func TestDaysBetween(t *testing.T) {
	base := at(2025, 1, 1, 0, 0, 0)
	assert.Equal(t, int64(0), DaysBetween(base, base))
	assert.Equal(t, int64(1), DaysBetween(base, base.Add(time.Second)))
	assert.Equal(t, int64(1), DaysBetween(base, base.Add(24*time.Hour)))
	assert.Equal(t, int64(2), DaysBetween(base, base.Add(24*time.Hour+time.Second)))
	assert.Equal(t, int64(0), DaysBetween(base.Add(time.Hour), base))
	assert.Equal(t, int64(-1), DaysBetween(base.Add(25*time.Hour), base))
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, int64(0), TimeOfDay(at(2025, 1, 1, 0, 0, 0)))
	assert.Equal(t, int64(10*3600+30), TimeOfDay(at(2025, 1, 1, 10, 0, 30)))
	assert.Equal(t, int64(23*3600), TimeOfDay(at(1960, 5, 1, 23, 0, 0)))
}
