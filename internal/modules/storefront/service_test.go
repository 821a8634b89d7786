package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
	"carsalesweblink/internal/sheets/sheetstest"
)

type fixture struct {
	svc      *Service
	dealers  *repository.DealerRepository
	vehicles *repository.VehicleRepository
	leads    *repository.LeadRepository
}

func newFixture() *fixture {
	cfg := &config.Config{
		AdminTab:         "Dealers",
		SettingsTab:      "Settings",
		LeadsStartRow:    20,
		LeadsRowBuffer:   10,
		MinDealerTabRows: 10,
		MinAdminTabRows:  50,
	}
	store := sheetstest.New()
	tabs := repository.NewDealerTabs(store, cfg)
	f := &fixture{
		dealers:  repository.NewDealerRepository(store, cfg),
		vehicles: repository.NewVehicleRepository(store, tabs),
		leads:    repository.NewLeadRepository(store, tabs),
	}
	f.svc = NewService(f.dealers, f.vehicles, f.leads, repository.NewSettingsRepository(store, cfg))
	return f
}

func (f *fixture) seedDealer(t *testing.T, status string) {
	t.Helper()
	_, err := f.dealers.Upsert(context.Background(), domain.Dealer{
		DealerID: "AB123",
		Name:     "AB Motors",
		Status:   status,
		WhatsApp: "8765551234",
	})
	require.NoError(t, err)
}

func TestService_Vehicles_VisibilityAllowList(t *testing.T) {
	f := newFixture()
	f.seedDealer(t, domain.DealerStatusActive)
	ctx := context.Background()

	statuses := []string{"available", "pending", "Published", "sold", "IN_STOCK"}
	for _, s := range statuses {
		_, err := f.vehicles.Upsert(ctx, "AB123", domain.Vehicle{Title: s, Status: s})
		require.NoError(t, err)
	}

	visible, err := f.svc.Vehicles(ctx, "AB123")
	require.NoError(t, err)

	require.Len(t, visible, 3)
	var titles []string
	for _, v := range visible {
		titles = append(titles, v.Title)
	}
	assert.ElementsMatch(t, []string{"available", "Published", "IN_STOCK"}, titles)
}

func TestService_Vehicles_PausedDealerHidden(t *testing.T) {
	f := newFixture()
	f.seedDealer(t, domain.DealerStatusPaused)

	_, err := f.svc.Vehicles(context.Background(), "AB123")
	assert.ErrorIs(t, err, sheets.ErrNotFound)
}

func TestService_Dealer_PublicProfileOmitsCredentials(t *testing.T) {
	f := newFixture()
	f.seedDealer(t, domain.DealerStatusActive)

	d, err := f.svc.Dealer(context.Background(), "ab123")
	require.NoError(t, err)
	assert.Equal(t, "AB123", d.DealerID)
	assert.Equal(t, "8765551234", d.WhatsApp)

	_, err = f.svc.Dealer(context.Background(), "not-a-dealer")
	assert.ErrorIs(t, err, sheets.ErrNotFound)
}

func TestService_SubmitLead_Defaults(t *testing.T) {
	f := newFixture()
	f.seedDealer(t, domain.DealerStatusActive)

	lead, err := f.svc.SubmitLead(context.Background(), "AB123", LeadRequest{
		Name:      "Jane",
		Phone:     "8765551234",
		VehicleID: "VEH-ABCDEF",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, domain.LeadSourceDefault, lead.Source)
	assert.Equal(t, domain.LeadTypeVideo, lead.Type)
	assert.Equal(t, "VEH-ABCDEF", lead.VehicleID)
}

func TestService_SubmitLead_RequiresContactAndActiveDealer(t *testing.T) {
	f := newFixture()
	f.seedDealer(t, domain.DealerStatusPaused)
	ctx := context.Background()

	_, err := f.svc.SubmitLead(ctx, "AB123", LeadRequest{Name: "Jane", Phone: "8765551234"})
	assert.ErrorIs(t, err, sheets.ErrNotFound)

	f2 := newFixture()
	f2.seedDealer(t, domain.DealerStatusActive)
	_, err = f2.svc.SubmitLead(ctx, "AB123", LeadRequest{Name: "Jane"})
	assert.ErrorIs(t, err, repository.ErrLeadMissingContact)
}

func TestService_Settings(t *testing.T) {
	f := newFixture()

	got, err := f.svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got, "storefrontLogoUrl")
}
