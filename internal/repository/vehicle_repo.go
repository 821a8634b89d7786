package repository

import (
	"context"
	"strings"
	"sync"

	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/sheets"
)

// VehicleRepository stores each dealer's vehicles in the vehicle section of
// that dealer's tab, keyed by vehicleId.
type VehicleRepository struct {
	store sheets.Store
	tabs  *DealerTabs

	mu     sync.Mutex
	tables map[string]*sheets.Table
}

func NewVehicleRepository(store sheets.Store, tabs *DealerTabs) *VehicleRepository {
	return &VehicleRepository{
		store:  store,
		tabs:   tabs,
		tables: make(map[string]*sheets.Table),
	}
}

func (r *VehicleRepository) List(ctx context.Context, dealerID string) ([]domain.Vehicle, error) {
	table, err := r.table(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	recs, err := table.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Vehicle, len(recs))
	for i, rec := range recs {
		out[i] = vehicleFromRecord(rec)
	}
	return out, nil
}

// Upsert updates the row matching the vehicle's id, or appends a new row. A
// vehicle without an id gets a fresh one, making the call an insert. Media
// URLs are sanitized before anything touches the store.
func (r *VehicleRepository) Upsert(ctx context.Context, dealerID string, v domain.Vehicle) (*domain.Vehicle, error) {
	if v.VehicleID == "" {
		v.VehicleID = NewVehicleID()
	}
	v.HeroImage = cleanMediaURL(v.HeroImage)
	v.HeroVideo = cleanMediaURL(v.HeroVideo)
	v.Images = cleanMediaURLs(v.Images, domain.MaxVehicleImages)
	if v.HeroImage == "" && len(v.Images) > 0 {
		v.HeroImage = v.Images[0]
	}
	if v.Price < 0 {
		v.Price = 0
	}

	table, err := r.table(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	rec, err := table.Upsert(ctx, vehicleToRecord(v))
	if err != nil {
		return nil, err
	}
	out := vehicleFromRecord(rec)
	return &out, nil
}

func (r *VehicleRepository) table(ctx context.Context, dealerID string) (*sheets.Table, error) {
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
		t = sheets.NewTable(r.store, title, r.tabs.VehicleLayout(), vehicleSchema, "vehicleId")
		r.tables[title] = t
	}
	return t, nil
}

// cleanMediaURL keeps only http(s) URLs; anything else becomes empty.
func cleanMediaURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return ""
}

func cleanMediaURLs(urls []string, max int) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = cleanMediaURL(u); u != "" {
			out = append(out, u)
		}
		if len(out) == max {
			break
		}
	}
	return out
}

func vehicleFromRecord(rec sheets.Record) domain.Vehicle {
	return domain.Vehicle{
		VehicleID: rec.Str("vehicleId"),
		Title:     rec.Str("title"),
		Make:      rec.Str("make"),
		Model:     rec.Str("model"),
		Year:      rec.Int("year"),
		Price:     rec.Float("price"),
		Status:    rec.Str("status"),
		Notes:     rec.Str("notes"),
		HeroImage: rec.Str("heroImage"),
		HeroVideo: rec.Str("heroVideo"),
		Images:    rec.List("imagesJson"),
		UpdatedAt: rec.Str("updatedAt"),
	}
}

func vehicleToRecord(v domain.Vehicle) sheets.Record {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return sheets.Record{
		"vehicleId":  v.VehicleID,
		"title":      v.Title,
		"make":       v.Make,
		"model":      v.Model,
		"year":       v.Year,
		"price":      v.Price,
		"status":     v.Status,
		"notes":      v.Notes,
		"heroImage":  v.HeroImage,
		"heroVideo":  v.HeroVideo,
		"imagesJson": images,
		"updatedAt":  v.UpdatedAt,
	}
}
