package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store against the Google Sheets v4 API.
type GoogleStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewGoogleStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleStore, error) {
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, storeErr("new service", err)
	}
	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (g *GoogleStore) Metadata(ctx context.Context) ([]TabInfo, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return nil, storeErr("get metadata", err)
	}
	tabs := make([]TabInfo, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		p := sh.Properties
		if p == nil {
			continue
		}
		info := TabInfo{ID: p.SheetId, Title: p.Title}
		if p.GridProperties != nil {
			info.RowCount = p.GridProperties.RowCount
			info.ColumnCount = p.GridProperties.ColumnCount
		}
		tabs = append(tabs, info)
	}
	return tabs, nil
}

func (g *GoogleStore) BatchUpdate(ctx context.Context, reqs []StructuralRequest) error {
	apiReqs := make([]*sheetsapi.Request, 0, len(reqs))
	for _, r := range reqs {
		switch {
		case r.AddTab != nil:
			apiReqs = append(apiReqs, &sheetsapi.Request{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{
						Title: r.AddTab.Title,
						GridProperties: &sheetsapi.GridProperties{
							RowCount:    r.AddTab.RowCount,
							ColumnCount: r.AddTab.ColCount,
						},
					},
				},
			})
		case r.ResizeGrid != nil:
			apiReqs = append(apiReqs, &sheetsapi.Request{
				UpdateSheetProperties: &sheetsapi.UpdateSheetPropertiesRequest{
					Properties: &sheetsapi.SheetProperties{
						SheetId: r.ResizeGrid.TabID,
						GridProperties: &sheetsapi.GridProperties{
							RowCount:    r.ResizeGrid.RowCount,
							ColumnCount: r.ResizeGrid.ColCount,
						},
					},
					Fields: "gridProperties.rowCount,gridProperties.columnCount",
				},
			})
		}
	}
	if len(apiReqs) == 0 {
		return nil
	}
	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: apiReqs,
	}).Context(ctx).Do()
	return storeErr("batch update", err)
}

func (g *GoogleStore) GetRange(ctx context.Context, a1 string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, a1).Context(ctx).Do()
	if err != nil {
		return nil, storeErr("get range "+a1, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			if s, ok := cell.(string); ok {
				row[j] = s
			} else {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func (g *GoogleStore) UpdateRange(ctx context.Context, a1 string, rows [][]string) error {
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, a1, valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return storeErr("update range "+a1, err)
}

func (g *GoogleStore) AppendRows(ctx context.Context, a1 string, rows [][]string) error {
	// OVERWRITE fills the first empty rows of the range in place. INSERT_ROWS
	// would shift everything below, which must never happen with a co-located
	// table further down the tab.
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, a1, valueRange(rows)).
		ValueInputOption("RAW").
		InsertDataOption("OVERWRITE").
		Context(ctx).Do()
	return storeErr("append "+a1, err)
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}
