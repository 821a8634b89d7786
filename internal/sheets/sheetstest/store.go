// Package sheetstest provides an in-memory implementation of sheets.Store
// with real grid semantics: bounded tabs, trimmed reads, append-to-first-gap.
// Tests assert against cell state and call counters instead of scripted mocks.
package sheetstest

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"carsalesweblink/internal/sheets"
)

type tab struct {
	id    int64
	title string
	rows  int
	cols  int
	cells [][]string
}

// Store is a thread-safe fake spreadsheet. The exported counters record how
// many calls of each kind were made, for idempotence assertions.
type Store struct {
	mu     sync.Mutex
	tabs   []*tab
	nextID int64

	GetCalls    int
	UpdateCalls int
	AppendCalls int
	BatchCalls  int
}

func New() *Store {
	return &Store{nextID: 1}
}

// NewWithTab returns a store holding one pre-sized tab.
func NewWithTab(title string, rows, cols int) *Store {
	s := New()
	s.addTab(title, rows, cols)
	return s
}

func (s *Store) Metadata(_ context.Context) ([]sheets.TabInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sheets.TabInfo, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = sheets.TabInfo{
			ID:          t.id,
			Title:       t.title,
			RowCount:    int64(t.rows),
			ColumnCount: int64(t.cols),
		}
	}
	return out, nil
}

func (s *Store) BatchUpdate(_ context.Context, reqs []sheets.StructuralRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BatchCalls++
	for _, r := range reqs {
		switch {
		case r.AddTab != nil:
			if s.lookup(r.AddTab.Title) != nil {
				return fmt.Errorf("sheetstest: tab %q already exists", r.AddTab.Title)
			}
			s.addTab(r.AddTab.Title, int(r.AddTab.RowCount), int(r.AddTab.ColCount))
		case r.ResizeGrid != nil:
			t := s.lookupID(r.ResizeGrid.TabID)
			if t == nil {
				return fmt.Errorf("sheetstest: no tab with id %d", r.ResizeGrid.TabID)
			}
			t.resize(int(r.ResizeGrid.RowCount), int(r.ResizeGrid.ColCount))
		default:
			return fmt.Errorf("sheetstest: empty structural request")
		}
	}
	return nil
}

func (s *Store) GetRange(_ context.Context, a1 string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetCalls++
	t, ref, err := s.resolve(a1)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for row := ref.startRow; row <= ref.endRow; row++ {
		var cells []string
		for col := ref.startCol; col <= ref.endCol; col++ {
			cells = append(cells, t.cells[row-1][col-1])
		}
		// The real store trims trailing empty cells and rows.
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		out = append(out, cells)
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (s *Store) UpdateRange(_ context.Context, a1 string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	t, ref, err := s.resolve(a1)
	if err != nil {
		return err
	}
	return t.write(ref.startRow, ref.startCol, rows)
}

func (s *Store) AppendRows(_ context.Context, a1 string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AppendCalls++
	t, ref, err := s.resolve(a1)
	if err != nil {
		return err
	}

	// Find the first row of the range with no data at or below it.
	next := ref.startRow
	for row := ref.endRow; row >= ref.startRow; row-- {
		populated := false
		for col := ref.startCol; col <= ref.endCol; col++ {
			if t.cells[row-1][col-1] != "" {
				populated = true
				break
			}
		}
		if populated {
			next = row + 1
			break
		}
	}
	if next+len(rows)-1 > ref.endRow {
		return fmt.Errorf("sheetstest: append to %s exceeds range", a1)
	}
	return t.write(next, ref.startCol, rows)
}

// Cell returns a cell's value for assertions (1-based row and column).
func (s *Store) Cell(title string, row, col int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.lookup(title)
	if t == nil || row > t.rows || col > t.cols {
		return ""
	}
	return t.cells[row-1][col-1]
}

// Row returns one full-width row for assertions.
func (s *Store) Row(title string, row int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.lookup(title)
	if t == nil || row > t.rows {
		return nil
	}
	return append([]string(nil), t.cells[row-1]...)
}

// Seed writes rows starting at (row, col 1) without touching the counters.
func (s *Store) Seed(title string, row int, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.lookup(title)
	if t == nil {
		panic("sheetstest: seed of unknown tab " + title)
	}
	if err := t.write(row, 1, rows); err != nil {
		panic(err)
	}
}

// TabRows returns the grid height of a tab, 0 if absent.
func (s *Store) TabRows(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.lookup(title); t != nil {
		return t.rows
	}
	return 0
}

func (s *Store) addTab(title string, rows, cols int) {
	t := &tab{id: s.nextID, title: title, rows: rows, cols: cols}
	s.nextID++
	t.cells = make([][]string, rows)
	for i := range t.cells {
		t.cells[i] = make([]string, cols)
	}
	s.tabs = append(s.tabs, t)
}

func (s *Store) lookup(title string) *tab {
	for _, t := range s.tabs {
		if t.title == title {
			return t
		}
	}
	return nil
}

func (s *Store) lookupID(id int64) *tab {
	for _, t := range s.tabs {
		if t.id == id {
			return t
		}
	}
	return nil
}

func (t *tab) resize(rows, cols int) {
	if cols <= 0 {
		cols = t.cols
	}
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		if i < t.rows {
			copy(grid[i], t.cells[i])
		}
	}
	t.rows, t.cols, t.cells = rows, cols, grid
}

func (t *tab) write(row, col int, rows [][]string) error {
	for i, r := range rows {
		for j, v := range r {
			rr, cc := row+i, col+j
			if rr > t.rows || cc > t.cols {
				return fmt.Errorf("sheetstest: write at (%d,%d) exceeds grid %dx%d of %q", rr, cc, t.rows, t.cols, t.title)
			}
			t.cells[rr-1][cc-1] = v
		}
	}
	return nil
}

type rangeRef struct {
	startRow, endRow int
	startCol, endCol int
}

var a1Pattern = regexp.MustCompile(`^(?:'((?:[^']|'')+)'|([A-Za-z0-9_]+))!([A-Z]+)([0-9]+)(?::([A-Z]+)([0-9]*))?$`)

func (s *Store) resolve(a1 string) (*tab, rangeRef, error) {
	m := a1Pattern.FindStringSubmatch(a1)
	if m == nil {
		return nil, rangeRef{}, fmt.Errorf("sheetstest: cannot parse range %q", a1)
	}
	title := m[2]
	if m[1] != "" {
		title = strings.ReplaceAll(m[1], "''", "'")
	}
	t := s.lookup(title)
	if t == nil {
		return nil, rangeRef{}, fmt.Errorf("sheetstest: no tab %q", title)
	}

	ref := rangeRef{
		startRow: atoi(m[4]),
		startCol: colNumber(m[3]),
	}
	ref.endRow, ref.endCol = ref.startRow, ref.startCol
	if m[5] != "" {
		ref.endCol = colNumber(m[5])
		if m[6] != "" {
			ref.endRow = atoi(m[6])
		} else {
			ref.endRow = t.rows
		}
	}
	if ref.endRow > t.rows || ref.endCol > t.cols {
		return nil, rangeRef{}, fmt.Errorf("sheetstest: range %q exceeds grid limits (%dx%d)", a1, t.rows, t.cols)
	}
	return t, ref, nil
}

func colNumber(name string) int {
	n := 0
	for _, r := range name {
		n = n*26 + int(r-'A') + 1
	}
	return n
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
