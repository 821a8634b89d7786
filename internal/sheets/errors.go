package sheets

import "errors"

var (
	// ErrNotFound reports an expected absence: no row carries the requested key.
	ErrNotFound = errors.New("sheets: record not found")

	// ErrTabNotFound reports a tab title missing from the spreadsheet after
	// provisioning should have created it.
	ErrTabNotFound = errors.New("sheets: tab not found")

	// ErrLayoutOverlap reports that writing another row would cross into the
	// row range declared for a co-located table below. The fixed-offset layout
	// cannot absorb this; callers must surface it, not grow past it.
	ErrLayoutOverlap = errors.New("sheets: table data would overlap co-located table")
)
