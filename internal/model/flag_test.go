package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    Flag
	}{
		{name: "empty subject", subject: "", want: FlagNone},
		{name: "plain subject", subject: "Coffee", want: FlagNone},
		{name: "flagged duplicate", subject: "?dupof(4) Coffee", want: FlagDuplicate},
		{name: "bare question mark", subject: "?", want: FlagDuplicate},
		{name: "confirmed not duplicate", subject: "!Coffee", want: FlagNotDuplicate},
		{name: "marker not at start", subject: "Coffee!?", want: FlagNone},
		{name: "leading space hides marker", subject: " !Coffee", want: FlagNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFlag(tt.subject))
			assert.Equal(t, tt.want, Transaction{Subject: tt.subject}.Flag())
		})
	}
}

func TestTransaction_TrimmedAccount(t *testing.T) {
	assert.Equal(t, "Bank A", Transaction{Account: "Bank A \t "}.TrimmedAccount())
	assert.Equal(t, " Bank A", Transaction{Account: " Bank A"}.TrimmedAccount())
	assert.Equal(t, "", Transaction{Account: "   "}.TrimmedAccount())
}

func TestRowFor(t *testing.T) {
	assert.Equal(t, 2, RowFor(0))
	assert.Equal(t, 11, RowFor(9))
}

func TestKeywordMap_Set(t *testing.T) {
	var km KeywordMap
	km.Set("STEAM", "Games")
	km.Set("Lawson", "Food")
	km.Set("STEAM", "Entertainment")

	assert.Equal(t, KeywordMap{
		{Keyword: "STEAM", Category: "Entertainment"},
		{Keyword: "Lawson", Category: "Food"},
	}, km)

	cat, ok := km.Lookup("Lawson")
	assert.True(t, ok)
	assert.Equal(t, "Food", cat)

	_, ok = km.Lookup("lawson")
	assert.False(t, ok)
}
