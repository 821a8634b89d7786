package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", columnName(1))
	assert.Equal(t, "L", columnName(12))
	assert.Equal(t, "Z", columnName(26))
	assert.Equal(t, "AA", columnName(27))
	assert.Equal(t, "AB", columnName(28))
}

func TestTableLayout_Ranges(t *testing.T) {
	l := TableLayout{HeaderRow: 1, DataStartRow: 2, DataEndRow: 1999}
	assert.Equal(t, "AB123!A1:L1", l.headerRange("AB123", 12))
	assert.Equal(t, "AB123!A2:L1999", l.dataRange("AB123", 12))

	open := TableLayout{HeaderRow: 1, DataStartRow: 2}
	assert.Equal(t, "Dealers!A2:I", open.dataRange("Dealers", 9))
}

func TestRangeQuoting(t *testing.T) {
	assert.Equal(t, "'My Tab'!A5:C5", RowRange("My Tab", 5, 3))
	assert.Equal(t, "Dealers!B3", CellRange("Dealers", 3, 2))
	assert.Equal(t, "'Bob''s'!A1", CellRange("Bob's", 1, 1))
}
