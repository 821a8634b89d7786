package repository

import (
	"context"
	"regexp"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/sheets"
)

const maxTabTitleLen = 80

var tabTitleUnsafe = regexp.MustCompile(`[^A-Za-z0-9 _-]`)

// DealerTabs manages the per-dealer tab layout: one tab holds two logical
// tables, vehicles from row 2 and leads from a fixed offset row far below.
// Keeping them in one tab means one tab title per dealer and one provisioning
// pass, at the cost of the wasted rows in between.
type DealerTabs struct {
	prov *sheets.Provisioner
	cfg  *config.Config
}

func NewDealerTabs(store sheets.Store, cfg *config.Config) *DealerTabs {
	return &DealerTabs{prov: sheets.NewProvisioner(store), cfg: cfg}
}

// Title derives the tab title for a canonical dealer id, stripped of
// characters a tab title cannot hold and capped in length.
func (d *DealerTabs) Title(dealerID string) string {
	title := tabTitleUnsafe.ReplaceAllString(dealerID, "")
	if len(title) > maxTabTitleLen {
		title = title[:maxTabTitleLen]
	}
	return title
}

// VehicleLayout is the upper logical table. Its end row is pinned one short of
// the lead header so growth past it fails loudly instead of overwriting leads.
func (d *DealerTabs) VehicleLayout() sheets.TableLayout {
	return sheets.TableLayout{
		HeaderRow:    1,
		DataStartRow: 2,
		DataEndRow:   d.cfg.LeadsStartRow - 1,
	}
}

// LeadLayout is the lower logical table, bounded by the provisioned grid.
func (d *DealerTabs) LeadLayout() sheets.TableLayout {
	return sheets.TableLayout{
		HeaderRow:    d.cfg.LeadsStartRow,
		DataStartRow: d.cfg.LeadsStartRow + 1,
		DataEndRow:   d.cfg.DealerTabMinRows(),
	}
}

// Ensure provisions the dealer's tab: existence, a grid tall enough to reach
// past the lead section, and both header rows. Returns the tab title.
func (d *DealerTabs) Ensure(ctx context.Context, dealerID string) (string, error) {
	title := d.Title(dealerID)
	if _, err := d.prov.EnsureTab(ctx, title, d.cfg.DealerTabMinRows()); err != nil {
		return "", err
	}
	if err := d.prov.EnsureHeaderRow(ctx, title, d.VehicleLayout(), vehicleSchema); err != nil {
		return "", err
	}
	if err := d.prov.EnsureHeaderRow(ctx, title, d.LeadLayout(), leadSchema); err != nil {
		return "", err
	}
	return title, nil
}
