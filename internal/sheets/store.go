package sheets

import (
	"context"
	"fmt"
)

// TabInfo is the resolved identity and grid capacity of one tab.
type TabInfo struct {
	ID          int64
	Title       string
	RowCount    int64
	ColumnCount int64
}

// StructuralRequest is one operation of a structural batch update. Exactly one
// field is set.
type StructuralRequest struct {
	AddTab     *AddTabRequest
	ResizeGrid *ResizeGridRequest
}

type AddTabRequest struct {
	Title    string
	RowCount int64
	ColCount int64
}

type ResizeGridRequest struct {
	TabID    int64
	RowCount int64
	ColCount int64
}

// Store is the backing spreadsheet contract. It exposes exactly the range
// primitives the repositories build on: metadata, structural batch updates,
// and rectangular value get/update/append. Rows are plain string cells; the
// store has no notion of keys or schemas.
//
// Implementations: the Google Sheets client in this package and the in-memory
// grid in the sheetstest package.
type Store interface {
	Metadata(ctx context.Context) ([]TabInfo, error)
	BatchUpdate(ctx context.Context, reqs []StructuralRequest) error
	GetRange(ctx context.Context, a1 string) ([][]string, error)
	UpdateRange(ctx context.Context, a1 string, rows [][]string) error
	// AppendRows lets the store locate the first empty row within the given
	// range and writes the rows there.
	AppendRows(ctx context.Context, a1 string, rows [][]string) error
}

// StoreError wraps any failed store call. It is propagated verbatim upward;
// no layer below the HTTP boundary retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("sheets: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
