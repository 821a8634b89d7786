package sheets

import (
	"fmt"
	"strings"
)

// TableLayout addresses one logical table inside a tab. Two layouts may share
// a tab (vehicles on top, leads far below); all row math goes through here so
// the boundary between them is explicit and checkable.
type TableLayout struct {
	HeaderRow    int
	DataStartRow int
	// DataEndRow is the last row this table may occupy, inclusive. Zero means
	// unbounded (limited only by the grid).
	DataEndRow int
}

func (l TableLayout) headerRange(title string, width int) string {
	return RowRange(title, l.HeaderRow, width)
}

func (l TableLayout) dataRange(title string, width int) string {
	end := l.DataEndRow
	if end == 0 {
		// Open-ended ranges ("A2:L") read to the grid's edge.
		return fmt.Sprintf("%s!A%d:%s", quoteTitle(title), l.DataStartRow, columnName(width))
	}
	return fmt.Sprintf("%s!A%d:%s%d", quoteTitle(title), l.DataStartRow, columnName(width), end)
}

// RowRange addresses one full-width row.
func RowRange(title string, row, width int) string {
	return fmt.Sprintf("%s!A%d:%s%d", quoteTitle(title), row, columnName(width), row)
}

// CellRange addresses a single cell by 1-based row and column.
func CellRange(title string, row, col int) string {
	return fmt.Sprintf("%s!%s%d", quoteTitle(title), columnName(col), row)
}

// columnName converts a 1-based column number to its letter form (1→A, 27→AA).
func columnName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}

// quoteTitle wraps a tab title in single quotes when A1 notation requires it.
func quoteTitle(title string) string {
	plain := true
	for _, r := range title {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			plain = false
			break
		}
	}
	if plain {
		return title
	}
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
