package sheets

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrMissingKey reports an upsert without a value in the table's key field.
var ErrMissingKey = errors.New("sheets: record has no key")

const (
	createdAtField = "createdAt"
	updatedAtField = "updatedAt"
)

// Table gives one tab range list/find/upsert/update-field semantics keyed by a
// designated schema field. Lookups are linear scans; the store itself has no
// index. Rows with a blank key are padding in the oversized grid and are
// skipped.
//
// The find-then-write in Upsert is serialized per key with an in-process
// mutex. That closes the duplicate-append race between goroutines of this
// process only; a second process can still race, as the store offers no
// conditional write.
type Table struct {
	store    Store
	title    string
	layout   TableLayout
	schema   Schema
	keyField string

	now func() time.Time

	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

func NewTable(store Store, title string, layout TableLayout, schema Schema, keyField string) *Table {
	return &Table{
		store:    store,
		title:    title,
		layout:   layout,
		schema:   schema,
		keyField: keyField,
		now:      time.Now,
		keyLocks: make(map[string]*sync.Mutex),
	}
}

type positionedRecord struct {
	Row int
	Rec Record
}

// ListAll reads and decodes every populated row of the table's data range.
func (t *Table) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := t.listRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r.Rec
	}
	return out, nil
}

// FindByKey returns the first record whose key field equals key, or
// ErrNotFound.
func (t *Table) FindByKey(ctx context.Context, key string) (Record, error) {
	rec, _, err := t.findRow(ctx, key)
	return rec, err
}

// Upsert updates the row holding the record's key in place, or appends a new
// row when no row holds it. On update, createdAt is preserved from the stored
// row unless the caller supplied one; updatedAt is always refreshed when the
// schema carries it.
func (t *Table) Upsert(ctx context.Context, rec Record) (Record, error) {
	key := rec.Str(t.keyField)
	if key == "" {
		return nil, ErrMissingKey
	}

	lock := t.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	now := t.now().UTC().Format(time.RFC3339)
	if t.schema.FieldIndex(updatedAtField) >= 0 {
		rec[updatedAtField] = now
	}

	rows, err := t.listRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Rec.Str(t.keyField) != key {
			continue
		}
		if t.schema.FieldIndex(createdAtField) >= 0 && rec.Str(createdAtField) == "" {
			rec[createdAtField] = r.Rec.Str(createdAtField)
		}
		a1 := RowRange(t.title, r.Row, t.schema.Width())
		if err := t.store.UpdateRange(ctx, a1, [][]string{t.schema.EncodeRow(rec)}); err != nil {
			return nil, err
		}
		return rec, nil
	}

	if t.schema.FieldIndex(createdAtField) >= 0 && rec.Str(createdAtField) == "" {
		rec[createdAtField] = now
	}
	return rec, t.appendRow(ctx, rows, rec)
}

// Append writes the record as a new row without looking for an existing key.
func (t *Table) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.Str(t.keyField) == "" {
		return nil, ErrMissingKey
	}
	now := t.now().UTC().Format(time.RFC3339)
	if t.schema.FieldIndex(updatedAtField) >= 0 {
		rec[updatedAtField] = now
	}
	if t.schema.FieldIndex(createdAtField) >= 0 && rec.Str(createdAtField) == "" {
		rec[createdAtField] = now
	}
	rows, err := t.listRows(ctx)
	if err != nil {
		return nil, err
	}
	return rec, t.appendRow(ctx, rows, rec)
}

// UpdateField writes value into a single cell of the row holding key, leaving
// the rest of the row untouched.
func (t *Table) UpdateField(ctx context.Context, key, field, value string) error {
	col := t.schema.FieldIndex(field)
	if col < 0 {
		return errors.New("sheets: unknown field " + field)
	}
	_, row, err := t.findRow(ctx, key)
	if err != nil {
		return err
	}
	a1 := CellRange(t.title, row, col+1)
	return t.store.UpdateRange(ctx, a1, [][]string{{value}})
}

func (t *Table) appendRow(ctx context.Context, existing []positionedRecord, rec Record) error {
	next := t.layout.DataStartRow
	if n := len(existing); n > 0 {
		next = existing[n-1].Row + 1
	}
	if t.layout.DataEndRow > 0 && next > t.layout.DataEndRow {
		return ErrLayoutOverlap
	}
	a1 := t.layout.dataRange(t.title, t.schema.Width())
	return t.store.AppendRows(ctx, a1, [][]string{t.schema.EncodeRow(rec)})
}

func (t *Table) listRows(ctx context.Context) ([]positionedRecord, error) {
	a1 := t.layout.dataRange(t.title, t.schema.Width())
	raw, err := t.store.GetRange(ctx, a1)
	if err != nil {
		return nil, err
	}
	keyIdx := t.schema.FieldIndex(t.keyField)
	var out []positionedRecord
	for i, row := range raw {
		if keyIdx >= len(row) || row[keyIdx] == "" {
			continue
		}
		out = append(out, positionedRecord{
			Row: t.layout.DataStartRow + i,
			Rec: t.schema.DecodeRow(row),
		})
	}
	return out, nil
}

func (t *Table) findRow(ctx context.Context, key string) (Record, int, error) {
	rows, err := t.listRows(ctx)
	if err != nil {
		return nil, 0, err
	}
	for _, r := range rows {
		if r.Rec.Str(t.keyField) == key {
			return r.Rec, r.Row, nil
		}
	}
	return nil, 0, ErrNotFound
}

func (t *Table) lockFor(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.keyLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		t.keyLocks[key] = lock
	}
	return lock
}

// FieldIndex returns the zero-based column of a field in the current layout,
// or -1.
func (s Schema) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
