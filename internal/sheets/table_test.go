package sheets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carsalesweblink/internal/sheets"
	"carsalesweblink/internal/sheets/sheetstest"
)

var itemSchema = sheets.Schema{
	Name: "items",
	Fields: []sheets.Field{
		{Name: "itemId"},
		{Name: "name"},
		{Name: "createdAt"},
		{Name: "updatedAt"},
	},
}

func newItemTable(dataEnd int) (*sheets.Table, *sheetstest.Store) {
	store := sheetstest.NewWithTab("Items", 100, 26)
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2, DataEndRow: dataEnd}
	return sheets.NewTable(store, "Items", layout, itemSchema, "itemId"), store
}

func TestTable_Upsert_InsertThenUpdateInPlace(t *testing.T) {
	table, store := newItemTable(50)
	ctx := context.Background()

	_, err := table.Upsert(ctx, sheets.Record{"itemId": "i1", "name": "first"})
	require.NoError(t, err)
	assert.Equal(t, "i1", store.Cell("Items", 2, 1))

	createdAt := store.Cell("Items", 2, 3)
	assert.NotEmpty(t, createdAt)
	assert.NotEmpty(t, store.Cell("Items", 2, 4))

	rec, err := table.Upsert(ctx, sheets.Record{"itemId": "i1", "name": "renamed"})
	require.NoError(t, err)

	// Same row rewritten, createdAt carried over from the stored row.
	assert.Equal(t, "renamed", store.Cell("Items", 2, 2))
	assert.Equal(t, createdAt, store.Cell("Items", 2, 3))
	assert.Equal(t, createdAt, rec.Str("createdAt"))
	assert.Empty(t, store.Cell("Items", 3, 1), "update must not append a second row")

	all, err := table.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTable_Upsert_DistinctKeysAppend(t *testing.T) {
	table, store := newItemTable(50)
	ctx := context.Background()

	for _, id := range []string{"i1", "i2", "i3"} {
		_, err := table.Upsert(ctx, sheets.Record{"itemId": id, "name": "n-" + id})
		require.NoError(t, err)
	}

	assert.Equal(t, "i3", store.Cell("Items", 4, 1))
	all, err := table.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTable_ListAll_SkipsBlankPaddingRows(t *testing.T) {
	table, store := newItemTable(50)
	// A gap row (no key) between two populated rows: the grid is oversized by
	// design and blanks are expected.
	store.Seed("Items", 2, [][]string{{"i1", "one", "c", "u"}})
	store.Seed("Items", 4, [][]string{{"i2", "two", "c", "u"}})

	all, err := table.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "i1", all[0].Str("itemId"))
	assert.Equal(t, "i2", all[1].Str("itemId"))
}

func TestTable_FindByKey_NotFound(t *testing.T) {
	table, _ := newItemTable(50)

	_, err := table.FindByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, sheets.ErrNotFound)
}

func TestTable_UpdateField_WritesSingleCell(t *testing.T) {
	table, store := newItemTable(50)
	store.Seed("Items", 2, [][]string{{"i1", "one", "c1", "u1"}})
	store.Seed("Items", 3, [][]string{{"i2", "two", "c2", "u2"}})

	require.NoError(t, table.UpdateField(context.Background(), "i2", "name", "TWO"))

	assert.Equal(t, []string{"i2", "TWO", "c2", "u2"}, store.Row("Items", 3)[:4])
	assert.Equal(t, []string{"i1", "one", "c1", "u1"}, store.Row("Items", 2)[:4])
}

func TestTable_Upsert_MissingKeyRejected(t *testing.T) {
	table, _ := newItemTable(50)

	_, err := table.Upsert(context.Background(), sheets.Record{"name": "anonymous"})
	assert.ErrorIs(t, err, sheets.ErrMissingKey)
}

func TestTable_Append_OverlapGuard(t *testing.T) {
	// Only rows 2..3 belong to this table; row 4 is declared for something
	// else. The third append must fail loudly instead of crossing over.
	table, _ := newItemTable(3)
	ctx := context.Background()

	_, err := table.Append(ctx, sheets.Record{"itemId": "i1"})
	require.NoError(t, err)
	_, err = table.Append(ctx, sheets.Record{"itemId": "i2"})
	require.NoError(t, err)

	_, err = table.Append(ctx, sheets.Record{"itemId": "i3"})
	assert.ErrorIs(t, err, sheets.ErrLayoutOverlap)
}
