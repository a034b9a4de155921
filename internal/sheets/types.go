package sheets

import (
	"strings"
)

// A1Range quotes a sheet name and appends a cell range in A1 notation.
func A1Range(sheet, cells string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + cells
}
