// Package category assigns spending categories to ledger rows by keyword.
package category

import (
	"strings"

	"github.com/Veraticus/marksman/internal/model"
)

// Match returns an annotation for every uncategorized row whose subject
// contains one of the keywords. The first keyword in km that matches wins.
// Matching is case-sensitive. Rows with an empty subject or an existing
// category are skipped but still counted for row numbering.
func Match(transactions []model.Transaction, km model.KeywordMap) []model.Annotation {
	var matched []model.Annotation
	for i, txn := range transactions {
		if txn.Subject == "" || txn.Category != "" {
			continue
		}

		for _, k := range km {
			if k.Keyword == "" || !strings.Contains(txn.Subject, k.Keyword) {
				continue
			}
			txn.Category = k.Category
			break
		}

		if txn.Category != "" {
			matched = append(matched, model.Annotation{
				Transaction: txn,
				Row:         model.RowFor(i),
			})
		}
	}

	return matched
}
