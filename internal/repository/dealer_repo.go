package repository

import (
	"context"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/sheets"
)

// DealerRepository stores dealers in the admin tab, one row per dealer keyed
// by dealerId. The admin tab is the single source of truth for dealer
// identity and credentials.
type DealerRepository struct {
	prov  *sheets.Provisioner
	table *sheets.Table
	cfg   *config.Config
}

func NewDealerRepository(store sheets.Store, cfg *config.Config) *DealerRepository {
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}
	return &DealerRepository{
		prov:  sheets.NewProvisioner(store),
		table: sheets.NewTable(store, cfg.AdminTab, layout, dealerSchema, "dealerId"),
		cfg:   cfg,
	}
}

func (r *DealerRepository) ensure(ctx context.Context) error {
	if _, err := r.prov.EnsureTab(ctx, r.cfg.AdminTab, r.cfg.MinAdminTabRows); err != nil {
		return err
	}
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}
	return r.prov.EnsureHeaderRow(ctx, r.cfg.AdminTab, layout, dealerSchema)
}

func (r *DealerRepository) List(ctx context.Context) ([]domain.Dealer, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	recs, err := r.table.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Dealer, len(recs))
	for i, rec := range recs {
		out[i] = dealerFromRecord(rec)
	}
	return out, nil
}

// Get returns sheets.ErrNotFound when no row carries the id.
func (r *DealerRepository) Get(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	id, err := CanonicalDealerID(dealerID)
	if err != nil {
		return nil, err
	}
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rec, err := r.table.FindByKey(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dealerFromRecord(rec)
	return &d, nil
}

// Upsert writes the dealer's row, updating in place when the id already
// exists. createdAt survives updates; updatedAt is refreshed.
func (r *DealerRepository) Upsert(ctx context.Context, d domain.Dealer) (*domain.Dealer, error) {
	id, err := CanonicalDealerID(d.DealerID)
	if err != nil {
		return nil, err
	}
	d.DealerID = id
	if d.Status == "" {
		d.Status = domain.DealerStatusActive
	}
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rec, err := r.table.Upsert(ctx, dealerToRecord(d))
	if err != nil {
		return nil, err
	}
	out := dealerFromRecord(rec)
	return &out, nil
}

func dealerFromRecord(rec sheets.Record) domain.Dealer {
	return domain.Dealer{
		DealerID:     rec.Str("dealerId"),
		Name:         rec.Str("name"),
		Status:       rec.Str("status"),
		PasscodeHash: rec.Str("passcodeHash"),
		Passcode:     rec.Str("passcode"),
		WhatsApp:     rec.Str("whatsapp"),
		LogoURL:      rec.Str("logoUrl"),
		CreatedAt:    rec.Str("createdAt"),
		UpdatedAt:    rec.Str("updatedAt"),
	}
}

func dealerToRecord(d domain.Dealer) sheets.Record {
	return sheets.Record{
		"dealerId":     d.DealerID,
		"name":         d.Name,
		"status":       d.Status,
		"passcodeHash": d.PasscodeHash,
		"passcode":     d.Passcode,
		"whatsapp":     d.WhatsApp,
		"logoUrl":      d.LogoURL,
		"createdAt":    d.CreatedAt,
		"updatedAt":    d.UpdatedAt,
	}
}
