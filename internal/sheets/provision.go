package sheets

import (
	"context"
	"strings"
)

// defaultColumnCount is the grid width new tabs are created with. Every schema
// here is narrower; keeping the stock 26 columns avoids a resize on the first
// schema change.
const defaultColumnCount = 26

// Provisioner idempotently makes a tab usable before any read or write: the
// tab exists, its grid is tall enough, and its header rows match the schema.
// When state already matches, ensure calls issue no writes.
type Provisioner struct {
	store Store
}

func NewProvisioner(store Store) *Provisioner {
	return &Provisioner{store: store}
}

// EnsureTab creates the tab if missing and grows its grid to at least minRows.
// The grid is never shrunk and cell contents are never touched; growth is a
// structural resize only. Requesting a data range past the grid's edge is a
// store-level error, so every layout's end row must be covered here first.
func (p *Provisioner) EnsureTab(ctx context.Context, title string, minRows int) (TabInfo, error) {
	info, err := p.findTab(ctx, title)
	if err == ErrTabNotFound {
		rows := int64(minRows)
		if rows < 100 {
			rows = 100
		}
		add := []StructuralRequest{{AddTab: &AddTabRequest{
			Title:    title,
			RowCount: rows,
			ColCount: defaultColumnCount,
		}}}
		if err := p.store.BatchUpdate(ctx, add); err != nil {
			return TabInfo{}, err
		}
		info, err = p.findTab(ctx, title)
		if err != nil {
			return TabInfo{}, err
		}
	} else if err != nil {
		return TabInfo{}, err
	}

	if info.RowCount < int64(minRows) {
		resize := []StructuralRequest{{ResizeGrid: &ResizeGridRequest{
			TabID:    info.ID,
			RowCount: int64(minRows),
			ColCount: info.ColumnCount,
		}}}
		if err := p.store.BatchUpdate(ctx, resize); err != nil {
			return TabInfo{}, err
		}
		info.RowCount = int64(minRows)
	}
	return info, nil
}

// EnsureHeaderRow compares the row at layout.HeaderRow against the schema's
// headers and rewrites it only on drift. Data rows are never reflowed: after a
// column is added, old rows stay at their old width and the codec's legacy
// handling realigns them on read.
func (p *Provisioner) EnsureHeaderRow(ctx context.Context, title string, layout TableLayout, schema Schema) error {
	want := schema.Headers()
	a1 := layout.headerRange(title, schema.Width())

	rows, err := p.store.GetRange(ctx, a1)
	if err != nil {
		return err
	}
	if len(rows) > 0 && strings.Join(rows[0], "\x00") == strings.Join(want, "\x00") {
		return nil
	}
	return p.store.UpdateRange(ctx, a1, [][]string{want})
}

func (p *Provisioner) findTab(ctx context.Context, title string) (TabInfo, error) {
	tabs, err := p.store.Metadata(ctx)
	if err != nil {
		return TabInfo{}, err
	}
	for _, t := range tabs {
		if t.Title == title {
			return t, nil
		}
	}
	return TabInfo{}, ErrTabNotFound
}
