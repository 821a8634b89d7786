package repository

import (
	"context"
	"errors"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/sheets"
)

// ErrUnknownSettingKey reports a write to a key outside the fixed set.
var ErrUnknownSettingKey = errors.New("repository: unknown setting key")

// SettingsRepository keeps the small global settings tab, one row per key
// from the fixed key set. Unknown keys are dropped on read and rejected on
// write.
type SettingsRepository struct {
	prov  *sheets.Provisioner
	table *sheets.Table
	cfg   *config.Config
}

func NewSettingsRepository(store sheets.Store, cfg *config.Config) *SettingsRepository {
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}
	return &SettingsRepository{
		prov:  sheets.NewProvisioner(store),
		table: sheets.NewTable(store, cfg.SettingsTab, layout, settingsSchema, "key"),
		cfg:   cfg,
	}
}

func (r *SettingsRepository) ensure(ctx context.Context) error {
	if _, err := r.prov.EnsureTab(ctx, r.cfg.SettingsTab, 50); err != nil {
		return err
	}
	layout := sheets.TableLayout{HeaderRow: 1, DataStartRow: 2}
	return r.prov.EnsureHeaderRow(ctx, r.cfg.SettingsTab, layout, settingsSchema)
}

// Get returns the known settings as a key→value map. Every key of the fixed
// set is present, defaulting to empty.
func (r *SettingsRepository) Get(ctx context.Context) (map[string]string, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	recs, err := r.table.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(domain.SettingKeys))
	for _, k := range domain.SettingKeys {
		out[k] = ""
	}
	for _, rec := range recs {
		if k := rec.Str("key"); domain.KnownSettingKey(k) {
			out[k] = rec.Str("value")
		}
	}
	return out, nil
}

// Update upserts one row per entry. Any unknown key rejects the whole call
// before a single row is written.
func (r *SettingsRepository) Update(ctx context.Context, values map[string]string) error {
	for k := range values {
		if !domain.KnownSettingKey(k) {
			return ErrUnknownSettingKey
		}
	}
	if err := r.ensure(ctx); err != nil {
		return err
	}
	for k, v := range values {
		rec := sheets.Record{"key": k, "value": v}
		if _, err := r.table.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
