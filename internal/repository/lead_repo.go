package repository

import (
	"context"
	"errors"
	"sync"

	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/sheets"
)

// ErrLeadMissingContact reports a lead without the required name or phone.
var ErrLeadMissingContact = errors.New("repository: lead requires name and phone")

// LeadRepository stores each dealer's leads in the lead section of that
// dealer's tab, keyed by leadId. Leads are append-only; only their status
// cell is ever rewritten.
type LeadRepository struct {
	store sheets.Store
	tabs  *DealerTabs

	mu     sync.Mutex
	tables map[string]*sheets.Table
}

func NewLeadRepository(store sheets.Store, tabs *DealerTabs) *LeadRepository {
	return &LeadRepository{
		store:  store,
		tabs:   tabs,
		tables: make(map[string]*sheets.Table),
	}
}

func (r *LeadRepository) List(ctx context.Context, dealerID string) ([]domain.Lead, error) {
	table, err := r.table(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	recs, err := table.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Lead, len(recs))
	for i, rec := range recs {
		out[i] = leadFromRecord(rec)
	}
	return out, nil
}

// Append writes a new lead row. Name and phone are required; everything else
// defaults: a fresh lead_ id, type "video", source "storefront", status "new".
func (r *LeadRepository) Append(ctx context.Context, dealerID string, l domain.Lead) (*domain.Lead, error) {
	if l.Name == "" || l.Phone == "" {
		return nil, ErrLeadMissingContact
	}
	if l.LeadID == "" {
		l.LeadID = NewLeadID()
	}
	if l.Type == "" {
		l.Type = domain.LeadTypeVideo
	}
	if l.Source == "" {
		l.Source = domain.LeadSourceDefault
	}
	if l.Status == "" {
		l.Status = domain.LeadStatusNew
	}

	table, err := r.table(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	rec, err := table.Append(ctx, leadToRecord(l))
	if err != nil {
		return nil, err
	}
	out := leadFromRecord(rec)
	return &out, nil
}

// UpdateStatus rewrites only the status cell of the lead's row.
func (r *LeadRepository) UpdateStatus(ctx context.Context, dealerID, leadID, status string) error {
	table, err := r.table(ctx, dealerID)
	if err != nil {
		return err
	}
	return table.UpdateField(ctx, leadID, "status", status)
}

func (r *LeadRepository) table(ctx context.Context, dealerID string) (*sheets.Table, error) {
	id, err := CanonicalDealerID(dealerID)
	if err != nil {
		return nil, err
	}
	title, err := r.tabs.Ensure(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[title]
	if !ok {
		t = sheets.NewTable(r.store, title, r.tabs.LeadLayout(), leadSchema, "leadId")
		r.tables[title] = t
	}
	return t, nil
}

func leadFromRecord(rec sheets.Record) domain.Lead {
	return domain.Lead{
		CreatedAt:     rec.Str("createdAt"),
		LeadID:        rec.Str("leadId"),
		VehicleID:     rec.Str("vehicleId"),
		Type:          rec.Str("type"),
		Name:          rec.Str("name"),
		Phone:         rec.Str("phone"),
		Email:         rec.Str("email"),
		PreferredDate: rec.Str("preferredDate"),
		PreferredTime: rec.Str("preferredTime"),
		Notes:         rec.Str("notes"),
		Source:        rec.Str("source"),
		Status:        rec.Str("status"),
	}
}

func leadToRecord(l domain.Lead) sheets.Record {
	return sheets.Record{
		"createdAt":     l.CreatedAt,
		"leadId":        l.LeadID,
		"vehicleId":     l.VehicleID,
		"type":          l.Type,
		"name":          l.Name,
		"phone":         l.Phone,
		"email":         l.Email,
		"preferredDate": l.PreferredDate,
		"preferredTime": l.PreferredTime,
		"notes":         l.Notes,
		"source":        l.Source,
		"status":        l.Status,
	}
}
