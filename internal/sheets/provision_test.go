package sheets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carsalesweblink/internal/sheets"
	"carsalesweblink/internal/sheets/sheetstest"
)

var headerSchema = sheets.Schema{
	Name: "things",
	Fields: []sheets.Field{
		{Name: "id"},
		{Name: "name"},
		{Name: "updatedAt"},
	},
}

func TestProvisioner_EnsureTab_CreatesMissing(t *testing.T) {
	store := sheetstest.New()
	prov := sheets.NewProvisioner(store)

	info, err := prov.EnsureTab(context.Background(), "AB123", 2300)
	require.NoError(t, err)

	assert.Equal(t, "AB123", info.Title)
	assert.GreaterOrEqual(t, info.RowCount, int64(2300))
	assert.Equal(t, 2300, store.TabRows("AB123"))
}

func TestProvisioner_EnsureTab_GrowsGridKeepingCells(t *testing.T) {
	store := sheetstest.NewWithTab("AB123", 1000, 26)
	store.Seed("AB123", 500, [][]string{{"keep-me"}})
	prov := sheets.NewProvisioner(store)

	info, err := prov.EnsureTab(context.Background(), "AB123", 2300)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, info.RowCount, int64(2300))
	assert.Equal(t, "keep-me", store.Cell("AB123", 500, 1))
}

func TestProvisioner_EnsureTab_Idempotent(t *testing.T) {
	store := sheetstest.NewWithTab("AB123", 2300, 26)
	prov := sheets.NewProvisioner(store)

	_, err := prov.EnsureTab(context.Background(), "AB123", 2300)
	require.NoError(t, err)
	assert.Zero(t, store.BatchCalls, "matching grid must not be rewritten")
}

func TestProvisioner_EnsureHeaderRow_WritesOnceThenGated(t *testing.T) {
	store := sheetstest.NewWithTab("Things", 100, 26)
	prov := sheets.NewProvisioner(store)
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}

	ctx := context.Background()
	require.NoError(t, prov.EnsureHeaderRow(ctx, "Things", layout, headerSchema))
	assert.Equal(t, 1, store.UpdateCalls)
	assert.Equal(t, []string{"id", "name", "updatedAt"}, store.Row("Things", 1)[:3])

	// Exact match: the second call must not write.
	require.NoError(t, prov.EnsureHeaderRow(ctx, "Things", layout, headerSchema))
	assert.Equal(t, 1, store.UpdateCalls)
}

func TestProvisioner_EnsureHeaderRow_MigratesDrift(t *testing.T) {
	store := sheetstest.NewWithTab("Things", 100, 26)
	store.Seed("Things", 1, [][]string{{"id", "name"}})
	store.Seed("Things", 2, [][]string{{"t1", "old row"}})
	prov := sheets.NewProvisioner(store)
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}

	require.NoError(t, prov.EnsureHeaderRow(context.Background(), "Things", layout, headerSchema))

	// Header rewritten in place, data rows untouched.
	assert.Equal(t, "updatedAt", store.Cell("Things", 1, 3))
	assert.Equal(t, "old row", store.Cell("Things", 2, 2))
}
