package storefront

import (
	"context"

	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
)

// Service contains the public storefront's business logic. A paused dealer is
// invisible here: every lookup behaves as if the dealer did not exist.
type Service struct {
	dealers  *repository.DealerRepository
	vehicles *repository.VehicleRepository
	leads    *repository.LeadRepository
	settings *repository.SettingsRepository
}

func NewService(
	dealers *repository.DealerRepository,
	vehicles *repository.VehicleRepository,
	leads *repository.LeadRepository,
	settings *repository.SettingsRepository,
) *Service {
	return &Service{
		dealers:  dealers,
		vehicles: vehicles,
		leads:    leads,
		settings: settings,
	}
}

// Dealer returns the public profile of an active dealer.
func (s *Service) Dealer(ctx context.Context, dealerID string) (*PublicDealer, error) {
	d, err := s.activeDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	return &PublicDealer{
		DealerID: d.DealerID,
		Name:     d.Name,
		WhatsApp: d.WhatsApp,
		LogoURL:  d.LogoURL,
	}, nil
}

// Vehicles lists a dealer's publicly visible vehicles: only those whose
// status is on the visibility allow-list.
func (s *Service) Vehicles(ctx context.Context, dealerID string) ([]PublicVehicle, error) {
	d, err := s.activeDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List(ctx, d.DealerID)
	if err != nil {
		return nil, err
	}
	out := make([]PublicVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.PubliclyVisible() {
			out = append(out, publicVehicle(v))
		}
	}
	return out, nil
}

// SubmitLead records a storefront enquiry in the dealer's lead section.
func (s *Service) SubmitLead(ctx context.Context, dealerID string, req LeadRequest) (*domain.Lead, error) {
	d, err := s.activeDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	lead := domain.Lead{
		VehicleID:     req.VehicleID,
		Type:          req.Type,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	}
	return s.leads.Append(ctx, d.DealerID, lead)
}

// Settings returns the global storefront settings.
func (s *Service) Settings(ctx context.Context) (map[string]string, error) {
	return s.settings.Get(ctx)
}

func (s *Service) activeDealer(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	d, err := s.dealers.Get(ctx, dealerID)
	if err != nil {
		if err == repository.ErrInvalidDealerID {
			return nil, sheets.ErrNotFound
		}
		return nil, err
	}
	if !d.IsActive() {
		return nil, sheets.ErrNotFound
	}
	return d, nil
}
