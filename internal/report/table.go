// Package report renders annotations and run summaries for people.
package report

import (
	"fmt"
	"io"

	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const dateLayout = "2006-01-02 15:04"

// PrintAnnotationsTable writes one table row per annotation, showing the
// value that would be written for kind next to the row it lands on.
func PrintAnnotationsTable(w io.Writer, kind service.AnnotationKind, rows []model.Annotation) {
	valueHeader := "New Subject"
	if kind == service.CategoryMark {
		valueHeader = "Category"
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title(kind, len(rows)))
	t.AppendHeader(table.Row{"Row", "Date", "Account", "Amount", "Currency", valueHeader})

	for _, a := range rows {
		txn := a.Transaction
		t.AppendRow(table.Row{
			a.Row,
			txn.Date.Format(dateLayout),
			txn.TrimmedAccount(),
			txn.Amount,
			txn.Currency,
			cell(kind, txn),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
}

func cell(kind service.AnnotationKind, txn model.Transaction) string {
	if kind == service.CategoryMark {
		return txn.Category
	}
	return txn.Subject
}

func title(kind service.AnnotationKind, n int) string {
	switch kind {
	case service.DuplicateMark:
		return fmt.Sprintf("%d possible duplicates", n)
	case service.CategoryMark:
		return fmt.Sprintf("%d subject-to-category matches", n)
	default:
		return fmt.Sprintf("%d %s annotations", n, kind)
	}
}
